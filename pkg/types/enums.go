package types

// WindowState describes where a reference instant falls relative to a shift window.
type WindowState string

// WindowState values.
const (
	WindowNotStarted WindowState = "NOT_STARTED"
	WindowActive     WindowState = "ACTIVE"
	WindowEnded      WindowState = "ENDED"
)

// DisplayClass groups status categories for presentation (Gantt coloring).
type DisplayClass string

// DisplayClass values mirror the categories shown on the plant timeline.
const (
	ClassProduction        DisplayClass = "production"
	ClassStartup           DisplayClass = "startup"
	ClassMeal              DisplayClass = "meal"
	ClassBreak             DisplayClass = "break"
	ClassChangeover        DisplayClass = "changeover"
	ClassPreventive        DisplayClass = "maintenance-preventive"
	ClassCorrectiveMold    DisplayClass = "corrective-mold"
	ClassCorrectivePress   DisplayClass = "corrective-press"
	ClassCorrectiveExtrude DisplayClass = "corrective-extrusion"
	ClassCorrective        DisplayClass = "corrective-equipment"
	ClassMaterialShortage  DisplayClass = "material-shortage"
	ClassQuality           DisplayClass = "quality"
	ClassUtilities         DisplayClass = "utilities-failure"
	ClassDies              DisplayClass = "dies"
	ClassPoweredOff        DisplayClass = "powered-off"
	ClassUnplanned         DisplayClass = "unplanned-stop"

	// ClassProgrammed covers programmed stops that are not a meal or break
	// (e.g. shift-change clock-out windows).
	ClassProgrammed DisplayClass = "programmed-stop"
)

// SourceKind selects how a dataset is fetched.
type SourceKind string

// SourceKind values enumerate the supported dataset backends.
const (
	SourceFile SourceKind = "file"
	SourceHTTP SourceKind = "http"
)

// Dataset names the four CSV inputs.
type Dataset string

// Dataset values.
const (
	DatasetProduction Dataset = "production"
	DatasetScrap      Dataset = "scrap"
	DatasetStatusLog  Dataset = "statuslog"
	DatasetCosts      Dataset = "costs"
)
