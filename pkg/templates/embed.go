package templates

import _ "embed"

var (
	//go:embed embedded/ruff.toml
	ruffBody string

	//go:embed embedded/ty.toml
	tyBody string

	//go:embed embedded/main.py
	mainBody string

	//go:embed embedded/gitignore
	gitignoreBody string
)
