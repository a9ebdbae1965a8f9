package config

// GitConfig controls committing the rewritten document.
type GitConfig struct {
	Commit      bool   `yaml:"commit" toml:"commit"`
	Message     string `yaml:"message" toml:"message"`
	AuthorName  string `yaml:"author_name" toml:"author_name"`
	AuthorEmail string `yaml:"author_email" toml:"author_email"`
}

// DefaultGitConfig returns commit defaults (disabled).
func DefaultGitConfig() GitConfig {
	return GitConfig{
		Message:     "docs: update sponsors",
		AuthorName:  "readmesync",
		AuthorEmail: "readmesync@users.noreply.github.com",
	}
}
