package sniff

import (
	"os"
	"path/filepath"
)

// walkWorkingCopy visits regular files under root with paths relative to
// root. Version-control internals and vendored trees are not ours to audit.
func walkWorkingCopy(root string, visit func(rel string, info os.FileInfo) error) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			switch info.Name() {
			case ".git", "vendor", "node_modules":
				return filepath.SkipDir
			}
			return nil
		}

		if !info.Mode().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		return visit(rel, info)
	})
}

func skippableFile(basename string) bool {
	_, skippable := skippableExtensions[filepath.Ext(basename)]
	return skippable
}

func probablyText(basename string) bool {
	if _, found := probablyTextExtensions[filepath.Ext(basename)]; found {
		return true
	}

	_, found := probablyTextFilenames[basename]
	return found
}

var skippableExtensions = map[string]struct{}{
	".a":     {},
	".bin":   {},
	".class": {},
	".dll":   {},
	".dylib": {},
	".eot":   {},
	".exe":   {},
	".gif":   {},
	".gz":    {},
	".ico":   {},
	".jar":   {},
	".jpeg":  {},
	".jpg":   {},
	".mo":    {},
	".mp3":   {},
	".mp4":   {},
	".o":     {},
	".pdf":   {},
	".png":   {},
	".pyc":   {},
	".so":    {},
	".tar":   {},
	".tgz":   {},
	".ttf":   {},
	".woff":  {},
	".woff2": {},
	".zip":   {},
}

var probablyTextFilenames = map[string]struct{}{
	"Dockerfile":  {},
	"Gemfile":     {},
	"Jenkinsfile": {},
	"LICENSE":     {},
	"Makefile":    {},
	"Procfile":    {},
	"README":      {},
	"Rakefile":    {},
	"Vagrantfile": {},
	"fstab":       {},
	"passwd":      {},
}

var probablyTextExtensions = map[string]struct{}{
	".bash":         {},
	".bat":          {},
	".c":            {},
	".cc":           {},
	".cfg":          {},
	".cnf":          {},
	".conf":         {},
	".cpp":          {},
	".cs":           {},
	".css":          {},
	".csv":          {},
	".dockerignore": {},
	".env":          {},
	".erb":          {},
	".gitignore":    {},
	".go":           {},
	".gradle":       {},
	".h":            {},
	".haml":         {},
	".hpp":          {},
	".html":         {},
	".ini":          {},
	".java":         {},
	".js":           {},
	".json":         {},
	".jsx":          {},
	".key":          {},
	".lock":         {},
	".log":          {},
	".markdown":     {},
	".md":           {},
	".pem":          {},
	".php":          {},
	".pl":           {},
	".po":           {},
	".ppk":          {},
	".properties":   {},
	".proto":        {},
	".ps1":          {},
	".py":           {},
	".rake":         {},
	".rb":           {},
	".rst":          {},
	".ru":           {},
	".sass":         {},
	".scss":         {},
	".sh":           {},
	".slim":         {},
	".sql":          {},
	".tf":           {},
	".tfvars":       {},
	".tmpl":         {},
	".toml":         {},
	".ts":           {},
	".tsv":          {},
	".tsx":          {},
	".txt":          {},
	".xml":          {},
	".yaml":         {},
	".yml":          {},
}
