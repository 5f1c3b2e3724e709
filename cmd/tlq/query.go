package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/clovexx/tl/internal/dom"
	"github.com/clovexx/tl/internal/fetch"
	"github.com/clovexx/tl/internal/output"
	"github.com/clovexx/tl/internal/selector"
)

var (
	queryJSON    bool
	queryURL     string
	queryFirst   bool
	queryText    bool
	queryTrack   bool
	queryTimeout time.Duration
)

var queryCmd = &cobra.Command{
	Use:   "query <selector> [file]",
	Short: "Run a CSS selector against an HTML document",
	Long: `Parse an HTML document and print the nodes matching a CSS selector.
Reads from a file, from stdin ("-" or no file argument), or from a URL
with --url.`,
	Args: cobra.RangeArgs(1, 2),
	Example: `  tlq query 'div.card' page.html
  cat page.html | tlq query '#main > span'
  tlq query -j -u https://example.com 'a[href^="https"]'`,
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().BoolVarP(&queryJSON, "json", "j", false, "Output in JSON format")
	queryCmd.Flags().StringVarP(&queryURL, "url", "u", "", "Fetch the document from a URL")
	queryCmd.Flags().BoolVar(&queryFirst, "first", false, "Print only the first match")
	queryCmd.Flags().BoolVarP(&queryText, "text", "t", false, "Print inner text instead of HTML")
	queryCmd.Flags().BoolVar(&queryTrack, "track", false, "Maintain ID/class lookup tables while parsing")
	queryCmd.Flags().DurationVar(&queryTimeout, "timeout", 10*time.Second, "Fetch timeout")
}

func runQuery(cmd *cobra.Command, args []string) error {
	sel, err := selector.ParseString(args[0])
	if err != nil {
		return fmt.Errorf("invalid selector: %w", err)
	}

	input, err := readDocument(args)
	if err != nil {
		return err
	}

	opts := dom.NewOptions()
	if queryTrack {
		opts = opts.TrackIDs().TrackClasses()
	}
	doc, err := dom.Parse(bytes.NewReader(input), opts)
	if err != nil {
		return err
	}

	handles := selector.QueryAll(doc, sel)
	if queryFirst && len(handles) > 1 {
		handles = handles[:1]
	}

	list := buildMatchList(doc, handles, args[0])
	list.TextOnly = queryText

	format := output.FormatText
	if queryJSON {
		format = output.FormatJSON
	}
	result, err := output.FormatOutput(list, format)
	if err != nil {
		return err
	}
	if result != "" {
		fmt.Println(result)
	}

	if len(handles) == 0 {
		os.Exit(ExitNoMatch)
	}
	return nil
}

// readDocument loads the document from --url, the file argument, or stdin.
func readDocument(args []string) ([]byte, error) {
	if queryURL != "" {
		return fetch.Document(queryURL, queryTimeout)
	}
	if len(args) < 2 || args[1] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(args[1])
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", args[1], err)
	}
	return data, nil
}

// buildMatchList converts matched handles to output entries.
func buildMatchList(doc *dom.Document, handles []dom.NodeHandle, expr string) *output.MatchList {
	list := &output.MatchList{
		Selector: expr,
		Count:    len(handles),
		Matches:  []output.Match{},
	}
	for _, h := range handles {
		m := output.Match{
			HTML: doc.OuterHTML(h),
			Text: doc.InnerText(h),
		}
		if tag := doc.Resolve(h).AsTag(); tag != nil {
			m.Tag = tag.Name()
			if id, ok := tag.Attributes().ID(); ok {
				m.ID = id
			}
			if class, ok := tag.Attributes().Class(); ok {
				m.Classes = strings.Fields(class)
			}
		}
		list.Matches = append(list.Matches, m)
	}
	return list
}
