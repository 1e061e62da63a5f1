package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/init-pkg/wrapped-reports/domain/app"
	"github.com/init-pkg/wrapped-reports/internal/app/session"
	"github.com/spf13/cobra"
)

var (
	bulkFlags workflowFlags
	bulkOut   string
	bulkPng   bool
)

var bulkCmd = &cobra.Command{
	Use:   "bulk FILE",
	Short: "Generate reports for every customer",
	Long: `Preview the first customer, then generate a report for every row of FILE.

Reports are written to OUT/reports.json. With --png every slide is also
exported to OUT/<customer>/.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withServices(cmd.Context(), func(ctx context.Context, svc *services) error {
			return runBulk(ctx, cmd, svc, args[0])
		})
	},
}

func init() {
	bulkFlags.bind(bulkCmd)
	bulkCmd.Flags().StringVar(&bulkOut, "out", "reports", "output directory")
	bulkCmd.Flags().BoolVar(&bulkPng, "png", false, "export every slide as PNG")
}

func runBulk(ctx context.Context, cmd *cobra.Command, svc *services, path string) error {
	sess, err := ingest(ctx, svc, path)
	if err != nil {
		return err
	}
	if sess, err = configure(svc, sess, &bulkFlags); err != nil {
		return err
	}
	if sess, err = preview(ctx, svc, sess); err != nil {
		return err
	}
	if sess, err = sess.BulkStarted(); err != nil {
		return err
	}

	var (
		theme  = sess.Theme()
		stderr = cmd.ErrOrStderr()
	)
	res, runErr := svc.bulk.Run(ctx, &app.BulkInput{
		Rows:     sess.Rows(),
		Mappings: sess.Mappings(),
		Business: sess.Business(),
		Theme:    &theme,
	}, func(p app.BulkProgress) {
		if next, err := sess.BulkProgressed(p); err == nil {
			sess = next
		}
		fmt.Fprintf(stderr, "\rGenerating reports %d/%d", p.Current, p.Total)
	})
	fmt.Fprintln(stderr)
	if res == nil {
		return runErr
	}

	if sess, err = sess.BulkCompleted(res); err != nil {
		return err
	}
	if err := writeReports(sess, bulkOut); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d reports, %d failures written to %s\n",
		len(sess.Reports()), len(sess.Failures()), bulkOut)

	if bulkPng && runErr == nil {
		if err := exportSlides(ctx, svc, sess, bulkOut); err != nil {
			return err
		}
	}
	return runErr
}

type reportsFile struct {
	Reports  []app.GeneratedReport `json:"reports"`
	Failures []app.BulkFailure     `json:"failures"`
}

func writeReports(sess session.Session, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(reportsFile{Reports: sess.Reports(), Failures: sess.Failures()}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "reports.json"), data, 0o644)
}

func exportSlides(ctx context.Context, svc *services, sess session.Session, dir string) error {
	var errList []error
	for i, r := range sess.Reports() {
		view := &app.DeckView{
			CustomerName: r.Customer.Name,
			BusinessName: sess.Business().Name,
			LogoURL:      sess.Business().LogoURL,
			Slides:       r.Slides,
		}

		images, err := svc.exporter.ExportAll(ctx, view)
		if err != nil {
			errList = append(errList, fmt.Errorf("%s: %w", r.Customer.Name, err))
			if ctx.Err() != nil {
				break
			}
			continue
		}

		if err := writeImages(filepath.Join(dir, fmt.Sprintf("%03d-%s", i+1, slug(r.Customer.Name))), images); err != nil {
			return err
		}
	}
	return errors.Join(errList...)
}

// writeImages stores every image under its exported name.
func writeImages(dir string, images []app.SlideImage) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, img := range images {
		if err := os.WriteFile(filepath.Join(dir, imageFileName(img.Name)), img.Data, 0o644); err != nil {
			return err
		}
	}
	return nil
}

// imageFileName keeps an exported name inside its directory. Customer names
// may carry path separators.
func imageFileName(name string) string {
	name = strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == 0 {
			return '-'
		}
		return r
	}, name)
	if name == "" || name == "." || name == ".." {
		return "slide.png"
	}
	return name
}
