package config

// Taskfile represents the structure of the taskrun.yaml configuration file.
// Every field is optional; absent fields keep their defaults.
type Taskfile struct {
	Version  string    `yaml:"version"`
	Paths    PathsDTO  `yaml:"paths"`
	Server   ServerDTO `yaml:"server"`
	Test     TestDTO   `yaml:"test"`
	Metadata string    `yaml:"metadata"`
	Sizes    SizesDTO  `yaml:"sizes"`
}

// PathsDTO overrides the directory conventions.
type PathsDTO struct {
	Source    string   `yaml:"source"`
	Build     string   `yaml:"build"`
	Test      string   `yaml:"test"`
	UtilFiles []string `yaml:"utilFiles"`
}

// ServerDTO configures the static server.
type ServerDTO struct {
	Port int    `yaml:"port"`
	Base string `yaml:"base"`
}

// TestDTO configures the browser test run.
type TestDTO struct {
	Page    string `yaml:"page"`
	Timeout string `yaml:"timeout"`
}

// SizesDTO configures the size comparison.
type SizesDTO struct {
	Cache string `yaml:"cache"`
}

// packageJSON is the subset of the project metadata file taskrun reads.
type packageJSON struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Version     string `json:"version"`
	Author      struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"author"`
	License  string `json:"license"`
	Homepage string `json:"homepage"`
}
