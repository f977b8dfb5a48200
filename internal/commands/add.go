package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/keihi-dev/keihi/internal/activity"
	"github.com/keihi-dev/keihi/internal/entry"
	"github.com/keihi-dev/keihi/internal/id"
	"github.com/keihi-dev/keihi/internal/model"
	"github.com/keihi-dev/keihi/internal/report"
)

// ErrNotInCatalog is returned for a store or item that is not listed by
// `keihi catalog`.
var ErrNotInCatalog = errors.New("not in catalog")

func newAddCommand() *cobra.Command {
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Record an expense entry",
	}
	addCmd.AddCommand(newAddStoreCommand(), newAddPersonalCommand())
	return addCmd
}

type addFlags struct {
	repoDir string
	in      entry.Input
}

func (f *addFlags) register(cmd *cobra.Command, withStore bool) {
	addRepoFlag(cmd, &f.repoDir)
	if withStore {
		cmd.Flags().StringVar(&f.in.Store, "store", "", "store name")
	}
	cmd.Flags().StringVar(&f.in.Item, "item", "", "expense item")
	cmd.Flags().StringVar(&f.in.Amount, "amount", "", "amount in yen")
	cmd.Flags().StringVar(&f.in.Memo, "memo", "", "free-text memo")
	cmd.Flags().StringVar(&f.in.OtherDetail, "other", "", "detail when --item is "+model.OtherItem)
}

func newAddStoreCommand() *cobra.Command {
	var f addFlags
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Record a store outflow",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, f.repoDir, entry.Store, f.in)
		},
	}
	f.register(cmd, true)
	return cmd
}

func newAddPersonalCommand() *cobra.Command {
	var f addFlags
	cmd := &cobra.Command{
		Use:   "personal",
		Short: "Record a personal expense claim",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, f.repoDir, entry.Personal, f.in)
		},
	}
	f.register(cmd, false)
	return cmd
}

func runAdd(cmd *cobra.Command, repoDir string, cat entry.Category, in entry.Input) error {
	p, ctx, err := openProject(cmd, repoDir)
	if err != nil {
		return err
	}
	defer p.Close()

	// Field validation comes first so a blank store reports as missing.
	if err := entry.Validate(cat, in); err != nil {
		return describeInput(cat, err)
	}
	if err := checkCatalog(p, cat, in); err != nil {
		return err
	}

	b := entry.NewBuilder(p.catalog, id.UUIDGenerator{}, time.Now)
	var base model.Entry
	label := p.cfg.Ledger.Claimant
	switch cat.Kind {
	case model.KindStore:
		e, err := b.BuildStore(in)
		if err != nil {
			return describeInput(cat, err)
		}
		if err := p.ledger.AppendStore(ctx, e); err != nil {
			return err
		}
		base, label = e.Entry, e.Store
	default:
		e, err := b.BuildPersonal(in)
		if err != nil {
			return describeInput(cat, err)
		}
		if err := p.ledger.AppendPersonal(ctx, e); err != nil {
			return err
		}
		base = e.Entry
	}

	p.log.Info().
		Str("kind", string(cat.Kind)).
		Str("id", base.ID.String()).
		Int64("amount", base.Amount).
		Msg("entry added")

	if err := activity.Append(p.root, activity.Entry{
		Timestamp: base.CreatedAt,
		Action:    activity.ActionAdd,
		Kind:      string(cat.Kind),
		EntryID:   base.ID.String(),
		Amount:    base.Amount,
		Details:   label + " " + base.DisplayItem,
	}); err != nil {
		p.log.Warn().Err(err).Msg("writing activity log")
	}
	p.snapshot(ctx, fmt.Sprintf("add: %s %s %s", cat.Kind, id.Short(base.ID), report.FormatYen(base.Amount)))

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, noticeAdded)
	fmt.Fprintf(out, "%s  %s  %s  %s\n", id.Short(base.ID), label, base.DisplayItem, report.FormatYen(base.Amount))
	return nil
}

func checkCatalog(p *project, cat entry.Category, in entry.Input) error {
	if cat.RequiresStore {
		if s := strings.TrimSpace(in.Store); !p.catalog.HasStore(s) {
			return fmt.Errorf("store %q: %w (see keihi catalog)", s, ErrNotInCatalog)
		}
	}
	if item := strings.TrimSpace(in.Item); !p.catalog.HasItem(cat.Kind, item) {
		return fmt.Errorf("item %q: %w (see keihi catalog)", item, ErrNotInCatalog)
	}
	return nil
}
