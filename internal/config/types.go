package config

// Repo describes the external dotfiles-management tool and its repository.
// - Tool: binary to invoke (e.g., yadm).
// - Remote: URL cloned when the local repository is missing. Empty disables cloning.
// - MarkerDir: directory whose presence means the local repository exists.
// - CommitMessage: message used when the operator leaves the prompt empty.
type Repo struct {
	Tool          string `yaml:"tool"`
	Remote        string `yaml:"remote"`
	MarkerDir     string `yaml:"marker_dir"`
	CommitMessage string `yaml:"commit_message"`
}

// Config is the top-level structure returned after loading the YAML configuration.
// Every path has a default, so an empty or missing file yields a usable Config.
type Config struct {
	DotfilesDir string `yaml:"dotfiles_dir"` // Directory holding the managed files
	BackupDir   string `yaml:"backup_dir"`   // Where colliding home entries are moved
	HomeDir     string `yaml:"home_dir"`     // Directory the links are created in
	StateFile   string `yaml:"state_file"`   // JSON record of links and backups
	LogTag      string `yaml:"log_tag"`      // Identifier attached to system log records
	Repo        Repo   `yaml:"repo"`
}
