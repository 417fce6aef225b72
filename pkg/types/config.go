package types

// ShiftDef is one entry of the shift table: start/end time of day as "HH:MM".
// A shift whose end is not after its start crosses midnight.
type ShiftDef struct {
	Start string `yaml:"start" json:"start"`
	End   string `yaml:"end" json:"end"`
}

// TaxonomyEntry is one exact-match row of the status taxonomy table.
type TaxonomyEntry struct {
	Status     string `yaml:"status" json:"status"`
	Label      string `yaml:"label,omitempty" json:"label,omitempty"`
	Class      string `yaml:"class" json:"class"`
	IsDowntime bool   `yaml:"isDowntime" json:"isDowntime"`
	Programmed bool   `yaml:"programmed,omitempty" json:"programmed,omitempty"`
}

// SourceConfig defines where one dataset is fetched from.
type SourceConfig struct {
	Kind SourceKind `yaml:"kind" json:"kind"`
	Path string     `yaml:"path,omitempty" json:"path,omitempty"` // kind: file
	URL  string     `yaml:"url,omitempty" json:"url,omitempty"`   // kind: http
}

// SourcesConfig holds the four dataset sources.
type SourcesConfig struct {
	Production SourceConfig `yaml:"production" json:"production"`
	Scrap      SourceConfig `yaml:"scrap" json:"scrap"`
	StatusLog  SourceConfig `yaml:"statusLog" json:"statusLog"`
	Costs      SourceConfig `yaml:"costs" json:"costs"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr string `yaml:"addr" json:"addr"`
}

// AppConfig represents the top-level andon.yaml configuration.
type AppConfig struct {
	Timezone            string              `yaml:"timezone"`
	DefaultRate         float64             `yaml:"defaultRate"`
	RefreshInterval     string              `yaml:"refreshInterval"`     // snapshot TTL, e.g. "60s"
	ProgrammedStopCap   int                 `yaml:"programmedStopCap"`   // minutes
	FinishingDepartment string              `yaml:"finishingDepartment"` // scrap-value department filter
	Shifts              map[string]ShiftDef `yaml:"shifts"`
	ProgrammedKeywords  []string            `yaml:"programmedKeywords"`
	RunningKeywords     []string            `yaml:"runningKeywords"`
	Taxonomy            []TaxonomyEntry     `yaml:"taxonomy,omitempty"`
	Sources             SourcesConfig       `yaml:"sources"`
	Server              *ServerConfig       `yaml:"server,omitempty"`
}
