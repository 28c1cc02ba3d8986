package web

type Config struct {
	TemplatesDir string
	StaticDir    string
}
