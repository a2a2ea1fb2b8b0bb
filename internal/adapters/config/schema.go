package config

// File is the structure of pharbuild.yaml. Every key is optional: the file is decoded
// on top of the embedded defaults.
type File struct {
	Repository       string           `yaml:"repository"`
	BuildDir         string           `yaml:"buildDir"`
	OutputDir        string           `yaml:"outputDir"`
	ArchiveName      string           `yaml:"archiveName"`
	PatchesDir       string           `yaml:"patchesDir"`
	SourceCleanup    []string         `yaml:"sourceCleanup"`
	AutoloaderSuffix string           `yaml:"autoloaderSuffix"`
	CleanerIgnore    []string         `yaml:"cleanerIgnore"`
	BuildTools       []RequirementDTO `yaml:"buildTools"`
	ExtensionBranch  string           `yaml:"extensionBranch"`
	Extensions       []ExtensionDTO   `yaml:"extensions"`
	ExemptNamespaces []string         `yaml:"exemptNamespaces"`
	ForcedPrefixes   []string         `yaml:"forcedPrefixes"`
	PatchSource      PatchSourceDTO   `yaml:"patchSource"`
	Prefixer         ToolDTO          `yaml:"prefixer"`
	Packager         ToolDTO          `yaml:"packager"`
}

// RequirementDTO is a package with a version constraint.
type RequirementDTO struct {
	Name       string `yaml:"name"`
	Constraint string `yaml:"constraint"`
}

// ExtensionDTO is an entry of the extension registry.
type ExtensionDTO struct {
	Name       string   `yaml:"name"`
	Source     string   `yaml:"source"`
	Exemptions []string `yaml:"exemptions"`
}

// PatchSourceDTO describes the patch metapackage.
type PatchSourceDTO struct {
	Name    string     `yaml:"name"`
	Version string     `yaml:"version"`
	Patches []PatchDTO `yaml:"patches"`
}

// PatchDTO is one patch of the metapackage.
type PatchDTO struct {
	Package     string `yaml:"package"`
	Description string `yaml:"description"`
	File        string `yaml:"file"`
}

// ToolDTO is an external tool argv template.
type ToolDTO struct {
	Command []string `yaml:"command"`
}
