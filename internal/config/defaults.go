package config

import (
	_ "embed"
)

//go:embed defaults/spider.yaml
var defaultSpiderYAML []byte
