package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	pathabs "github.com/Jumpaku/go-pathabs"
)

func main() {
	base, err := os.MkdirTemp("", "pathabs-example-")
	if err != nil {
		log.Panic(err)
	}
	defer os.RemoveAll(base)

	// Scaffold a small project tree.
	project, err := pathabs.CreateDirAll(filepath.Join(base, "example"))
	if err != nil {
		log.Panic(err)
	}
	src, err := pathabs.CreateDir(project.Join("src"))
	if err != nil {
		log.Panic(err)
	}
	lib, err := pathabs.CreateFile(src.Join("lib.go"))
	if err != nil {
		log.Panic(err)
	}
	cfg, err := pathabs.CreateFile(project.Join("config.toml"))
	if err != nil {
		log.Panic(err)
	}

	if err := lib.WriteString("package lib\n"); err != nil {
		log.Panic(err)
	}
	if err := cfg.WriteString("[package]\nname = \"example\"\n"); err != nil {
		log.Panic(err)
	}

	// List the project root; each entry arrives already narrowed.
	for entry, err := range project.List() {
		if err != nil {
			log.Panic(err)
		}
		switch {
		case entry.IsDir():
			fmt.Printf("dir  %s\n", entry)
		case entry.IsFile():
			fmt.Printf("file %s\n", entry)
		}
	}

	// Stepping to a parent needs no filesystem call.
	fmt.Println("lib parent is src:", lib.ParentDir() == src)

	// Round-trip a handle through the text encoding.
	text := cfg.Abs().Encode()
	decoded, err := pathabs.DecodeFile(text)
	if err != nil {
		log.Panic(err)
	}
	fmt.Println("decoded equals cfg:", decoded == cfg)
}
