package config

// Numeric module fields are strings so unparsable values fall back to zero
// like typed dialog input does.

type YAMLBatch struct {
	Output  string       `yaml:"output"`
	Formats []string     `yaml:"formats"`
	Preview YAMLPreview  `yaml:"preview"`
	Modules []YAMLModule `yaml:"modules"`
}

type YAMLPreview struct {
	DPI   int `yaml:"dpi"`
	Width int `yaml:"width"`
}

type YAMLModule struct {
	Name  string `yaml:"name"`
	Type  string `yaml:"type"`
	HP    string `yaml:"hp"`
	Rad   string `yaml:"rad"`
	MHW   string `yaml:"mh_w"`
	PCBMH string `yaml:"pcb_mh"`
}
