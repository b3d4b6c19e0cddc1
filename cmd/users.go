package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/Sagaustus/spyral-translation/internal/access"
	"github.com/Sagaustus/spyral-translation/internal/auth/pwhash"
	"github.com/Sagaustus/spyral-translation/internal/dependency"
	"github.com/Sagaustus/spyral-translation/internal/entity"
	"github.com/Sagaustus/spyral-translation/internal/l10n"
	"github.com/spf13/cobra"
)

func addUserCmd() *cobra.Command {
	var (
		password  string
		superuser bool
		groups    []string
	)
	cmd := &cobra.Command{
		Use:   "add-user <username>",
		Short: "Create a user with an optional superuser flag and groups",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := strings.ToLower(strings.TrimSpace(args[0]))
			if username == "" || password == "" {
				return fmt.Errorf("username and --password are required")
			}
			gs, err := parseGroups(groups)
			if err != nil {
				return err
			}

			ctx := context.Background()
			cfg, db, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			ph, err := pwhash.New(cfg.Auth.PasswordHashCost)
			if err != nil {
				return err
			}
			hash, err := ph.HashPassword(password)
			if err != nil {
				return err
			}

			var id int
			err = db.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
				id, err = rep.Users().AddUser(ctx, username, hash, superuser)
				if err != nil {
					return err
				}
				for _, g := range gs {
					if err := rep.Users().AddToGroup(ctx, id, g); err != nil {
						return err
					}
				}
				return nil
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created user %s (id %d).\n", username, id)
			return nil
		},
	}
	cmd.Flags().StringVar(&password, "password", "", "initial password")
	cmd.Flags().BoolVar(&superuser, "superuser", false, "grant superuser")
	cmd.Flags().StringSliceVar(&groups, "group", nil, "group membership: L10N_SUPERADMIN or L10N_REVIEWER (repeatable)")
	return cmd
}

func parseGroups(raw []string) ([]entity.Group, error) {
	out := make([]entity.Group, 0, len(raw))
	for _, r := range raw {
		g := entity.Group(strings.ToUpper(strings.TrimSpace(r)))
		if !entity.ValidGroups[g] {
			return nil, fmt.Errorf("unknown group %q", r)
		}
		out = append(out, g)
	}
	return out, nil
}

func assignLocaleCmd() *cobra.Command {
	var remove bool
	cmd := &cobra.Command{
		Use:   "assign-locale <username> <locale>",
		Short: "Give a reviewer access to a locale",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			_, db, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			svc := l10n.New(db)
			username := strings.ToLower(strings.TrimSpace(args[0]))
			code := strings.TrimSpace(args[1])
			if remove {
				if err := svc.UnassignLocale(ctx, access.System(), username, code); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from %s.\n", code, username)
				return nil
			}
			if _, err := svc.AssignLocale(ctx, access.System(), username, code); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Assigned %s to %s.\n", code, username)
			return nil
		},
	}
	cmd.Flags().BoolVar(&remove, "remove", false, "remove the assignment instead")
	return cmd
}
