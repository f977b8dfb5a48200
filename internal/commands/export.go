package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/keihi-dev/keihi/internal/activity"
	"github.com/keihi-dev/keihi/internal/export"
	"github.com/keihi-dev/keihi/internal/report"
	"github.com/keihi-dev/keihi/internal/sink"
)

func newExportCommand() *cobra.Command {
	var repoDir string
	var format string
	var sinkName string
	var dir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export both collections as one CSV (or XLSX) file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ctx, err := openProject(cmd, repoDir)
			if err != nil {
				return err
			}
			defer p.Close()

			if format != "" {
				p.cfg.Export.Format = format
			}
			if sinkName != "" {
				p.cfg.Export.Sink = sinkName
			}
			if dir != "" {
				p.cfg.Export.Dir = dir
			}
			if err := p.cfg.Validate(); err != nil {
				return err
			}

			store, personal := p.ledger.StoreEntries(), p.ledger.PersonalEntries()
			x := export.NewExporter(p.cfg.Ledger.Claimant, time.Now)
			doc, err := x.Export(p.cfg.Export.Format, store, personal)
			if errors.Is(err, export.ErrEmptyDataset) {
				return describe(err)
			}
			if err != nil {
				return err
			}

			dst, err := newSink(ctx, cmd, p)
			if err != nil {
				return err
			}
			location, err := dst.Deliver(ctx, doc)
			if err != nil {
				return err
			}

			total := report.GrandTotal(store, personal)
			p.log.Info().
				Str("file", doc.FileName).
				Str("location", location).
				Int("entries", len(store)+len(personal)).
				Int64("amount", total).
				Msg("exported")
			if err := activity.Append(p.root, activity.Entry{
				Timestamp: nowUTC(),
				Action:    activity.ActionExport,
				Amount:    total,
				Details:   location,
			}); err != nil {
				p.log.Warn().Err(err).Msg("writing activity log")
			}
			p.snapshot(ctx, "export: "+doc.FileName)

			// Keep stdout clean when the document itself went there.
			notice := cmd.OutOrStdout()
			if p.cfg.Export.Sink == "stdout" {
				notice = cmd.ErrOrStderr()
			}
			fmt.Fprintf(notice, "%s: %s\n", noticeExported, location)
			return nil
		},
	}

	addRepoFlag(cmd, &repoDir)
	cmd.Flags().StringVar(&format, "format", "", "csv or xlsx (default from keihi.yaml)")
	cmd.Flags().StringVar(&sinkName, "sink", "", "dir, stdout or s3 (default from keihi.yaml)")
	cmd.Flags().StringVar(&dir, "dir", "", "output directory for the dir sink")

	return cmd
}

func newSink(ctx context.Context, cmd *cobra.Command, p *project) (sink.Sink, error) {
	switch p.cfg.Export.Sink {
	case "stdout":
		return sink.Writer{W: cmd.OutOrStdout()}, nil
	case "s3":
		s3cfg := p.cfg.Export.S3
		return sink.NewS3(ctx, sink.S3Config{
			Bucket:    s3cfg.Bucket,
			Region:    s3cfg.Region,
			Endpoint:  s3cfg.Endpoint,
			Prefix:    s3cfg.Prefix,
			PathStyle: s3cfg.PathStyle,
		})
	default:
		return sink.Dir{Path: p.resolve(p.cfg.Export.Dir)}, nil
	}
}
