package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/keihi-dev/keihi/internal/activity"
	"github.com/keihi-dev/keihi/internal/id"
	"github.com/keihi-dev/keihi/internal/ledger"
	"github.com/keihi-dev/keihi/internal/model"
)

func newDeleteCommand() *cobra.Command {
	var repoDir string
	var kindName string

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one entry by id or unique id prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var kind model.Kind
			if kindName != "" {
				k, err := model.ParseKind(kindName)
				if err != nil {
					return err
				}
				kind = k
			}
			prefix, err := id.Parse(args[0])
			if err != nil {
				return err
			}

			p, ctx, err := openProject(cmd, repoDir)
			if err != nil {
				return err
			}
			defer p.Close()

			ref, ok, err := resolveRef(p.ledger.Find(kind, prefix), prefix)
			if err != nil {
				return err
			}
			if !ok {
				p.log.Debug().Str("id", prefix.String()).Msg("no matching entry")
				return nil
			}

			amount := amountOf(p.ledger, ref)
			removed, err := p.ledger.Remove(ctx, ref.Kind, ref.ID)
			if err != nil {
				return err
			}
			if !removed {
				return nil
			}

			p.log.Info().
				Str("kind", string(ref.Kind)).
				Str("id", ref.ID.String()).
				Int64("amount", amount).
				Msg("entry deleted")
			if err := activity.Append(p.root, activity.Entry{
				Timestamp: nowUTC(),
				Action:    activity.ActionDelete,
				Kind:      string(ref.Kind),
				EntryID:   ref.ID.String(),
				Amount:    amount,
			}); err != nil {
				p.log.Warn().Err(err).Msg("writing activity log")
			}
			p.snapshot(ctx, fmt.Sprintf("delete: %s %s", ref.Kind, id.Short(ref.ID)))

			fmt.Fprintln(cmd.OutOrStdout(), noticeDeleted)
			return nil
		},
	}

	addRepoFlag(cmd, &repoDir)
	cmd.Flags().StringVar(&kindName, "kind", "", "only search one kind (store or personal)")

	return cmd
}

// resolveRef picks the single entry a prefix refers to. An exact id match
// wins over longer ids sharing the prefix.
func resolveRef(refs []ledger.Ref, prefix id.ID) (ledger.Ref, bool, error) {
	var exact []ledger.Ref
	for _, r := range refs {
		if r.ID == prefix {
			exact = append(exact, r)
		}
	}
	if len(exact) > 0 {
		refs = exact
	}

	switch len(refs) {
	case 0:
		return ledger.Ref{}, false, nil
	case 1:
		return refs[0], true, nil
	default:
		ids := make([]string, len(refs))
		for i, r := range refs {
			ids[i] = string(r.Kind) + ":" + r.ID.String()
		}
		return ledger.Ref{}, false, fmt.Errorf("id %q is ambiguous: %s", prefix, strings.Join(ids, ", "))
	}
}

func amountOf(l *ledger.Service, ref ledger.Ref) int64 {
	if ref.Kind == model.KindPersonal {
		for _, e := range l.PersonalEntries() {
			if e.ID == ref.ID {
				return e.Amount
			}
		}
		return 0
	}
	for _, e := range l.StoreEntries() {
		if e.ID == ref.ID {
			return e.Amount
		}
	}
	return 0
}
