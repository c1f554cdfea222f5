package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/rescanvas/assist/canvas"
	"github.com/rescanvas/assist/export"
)

func main() {
	inputName := flag.String("i", "", "canvas snapshot (json) to convert")
	outputName := flag.String("o", "", "output filename")
	title := flag.String("t", "", "page title")
	pageNumbers := flag.Bool("n", false, "add page numbers")
	flag.Parse()

	if err := convert(*inputName, *outputName, *title, *pageNumbers); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func convert(inputName, outputName, title string, pageNumbers bool) error {
	if inputName == "" {
		return errors.New("missing input file")
	}

	if outputName == "" {
		nameOnly := strings.TrimSuffix(inputName, filepath.Ext(inputName))
		outputName = nameOnly + ".pdf"
	}

	data, err := ioutil.ReadFile(inputName)
	if err != nil {
		return fmt.Errorf("can't read input file %w", err)
	}

	var state canvas.State
	if err := json.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("can't parse canvas snapshot %w", err)
	}

	options := export.PdfExporterOptions{
		AddPageNumbers: pageNumbers,
		Title:          title,
	}
	return export.NewPdfExporter(outputName, options).Export(state)
}
