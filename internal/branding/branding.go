package branding

// Client branding used by the report and export layers. Kept in one place so
// institution deployments can rebrand without touching the generators.

const (
	ClientName = "Automation_hub Engineering Group Limited"
	AppTitle   = "Enhanced ACI 211.1 Concrete Mix Designer"
	FooterNote = "© 2025 ACI Mix Designer | Built for engineering precision"
	LogoPath   = "./static/assets/logo.png"
)

// PrimaryColor is #0052cc split into RGB components for gofpdf.
var PrimaryColor = [3]int{0, 82, 204}

// ChartPalette holds the fill colors for the composition chart, in the fixed
// material order water, cement, fine aggregate, coarse aggregate.
var ChartPalette = [4][3]int{
	{0, 82, 204},
	{120, 144, 156},
	{255, 179, 0},
	{109, 76, 65},
}
