package config

// Config represents the transform-results.yaml configuration file.
// Every field can be overridden from the command line.
type Config struct {
	Version int `yaml:"version"`

	// OutputRoot is the directory holding the outputs of the transformation.
	OutputRoot string `yaml:"output_root,omitempty"`

	// Manifest is the result manifest path.
	Manifest string `yaml:"manifest,omitempty"`

	// InputArtifact is the artifact input elements resolve against.
	InputArtifact string `yaml:"input_artifact,omitempty"`

	// Workspace, when set, supplies OutputRoot and Manifest from the
	// standard workspace layout.
	Workspace string `yaml:"workspace,omitempty"`
}
