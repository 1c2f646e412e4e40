package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chalvinwz/sitemeta"
)

func runExport(stdout io.Writer, configPath, formatName, outPath string) error {
	format, err := sitemeta.ParseFormat(formatName)
	if err != nil {
		return err
	}
	meta, err := sitemeta.Load(configPath)
	if err != nil {
		return err
	}

	if outPath == "" {
		return sitemeta.Export(stdout, meta, format)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	if err := sitemeta.Export(f, meta, format); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", outPath, err)
	}
	fmt.Fprintf(stdout, "wrote %s\n", outPath)
	return nil
}

// errCheckFailed is returned by runCheck after the violations were printed.
var errCheckFailed = errors.New("site metadata has problems")

func runCheck(stdout io.Writer, configPath string) error {
	meta, err := sitemeta.Load(configPath)
	if err != nil {
		return err
	}

	err = sitemeta.Check(meta)
	var verrs *sitemeta.ValidationErrors
	switch {
	case err == nil:
		fmt.Fprintf(stdout, "ok: %d fields checked\n", len(meta.Fields()))
		return nil
	case errors.As(err, &verrs):
		for _, e := range verrs.Errors() {
			fmt.Fprintf(stdout, "  %v\n", e)
		}
		return fmt.Errorf("%w (%d)", errCheckFailed, len(verrs.Errors()))
	default:
		return err
	}
}
