// Command sf2template writes a blank SF2 workbook matching the renderer's
// default layout.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"attendance-sf2/src/config"
	"attendance-sf2/src/services/sf2"
)

func main() {
	cfg := config.Load()
	out := flag.String("out", cfg.SF2TemplatePath, "where to write the template")
	force := flag.Bool("force", false, "overwrite an existing file")
	flag.Parse()

	if _, err := os.Stat(*out); err == nil && !*force {
		log.Fatalf("❌ %s already exists (use -force to overwrite)", *out)
	}
	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		log.Fatalf("❌ %v", err)
	}
	if err := sf2.SaveTemplate(sf2.DefaultLayout(), *out); err != nil {
		log.Fatalf("❌ write template: %v", err)
	}
	log.Printf("✅ SF2 template written to %s", *out)
}
