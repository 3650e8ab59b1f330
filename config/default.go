package config

func GetDefault() Config {
	return Config{
		Backend: BackendGit,
		Format:  FormatText,
		Color:   ColorAuto,
	}
}
