package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	wit "github.com/conversekit/wit-client"
)

func newEntitiesCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "entities", Short: "Manage entities"}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all entities",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			var out []wit.EntityRef
			if err := withRetry(cmd.Context(), func() error {
				out, err = c.ListEntities(cmd.Context())
				return err
			}); err != nil {
				return err
			}
			return printJSON(out)
		},
	})

	var roles, lookups []string
	create := &cobra.Command{
		Use:   "create NAME",
		Short: "Create an entity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			var out *wit.Entity
			if err := withRetry(cmd.Context(), func() error {
				out, err = c.CreateEntity(cmd.Context(), wit.NewEntity{
					Name:    args[0],
					Roles:   roles,
					Lookups: lookups,
				})
				return err
			}); err != nil {
				return err
			}
			return printJSON(out)
		},
	}
	create.Flags().StringSliceVar(&roles, "roles", nil, "Roles to create for the entity")
	create.Flags().StringSliceVar(&lookups, "lookups", nil, "Lookup strategies (free-text, keywords)")
	cmd.AddCommand(create)

	cmd.AddCommand(&cobra.Command{
		Use:   "get NAME",
		Short: "Show an entity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			var out *wit.Entity
			if err := withRetry(cmd.Context(), func() error {
				out, err = c.GetEntity(cmd.Context(), args[0])
				return err
			}); err != nil {
				return err
			}
			return printJSON(out)
		},
	})

	var updRoles []string
	update := &cobra.Command{
		Use:   "update NAME",
		Short: "Update an entity's roles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			var out *wit.Entity
			if err := withRetry(cmd.Context(), func() error {
				out, err = c.UpdateEntity(cmd.Context(), args[0], wit.UpdateEntity{
					Name:  args[0],
					Roles: updRoles,
				})
				return err
			}); err != nil {
				return err
			}
			return printJSON(out)
		},
	}
	update.Flags().StringSliceVar(&updRoles, "roles", nil, "Replacement roles")
	cmd.AddCommand(update)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete NAME",
		Short: "Delete an entity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			var out *wit.DeleteResponse
			if err := withRetry(cmd.Context(), func() error {
				out, err = c.DeleteEntity(cmd.Context(), args[0])
				return err
			}); err != nil {
				return err
			}
			return printJSON(out)
		},
	})

	return cmd
}

func newIntentsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "intents", Short: "Manage intents"}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all intents",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			var out []wit.IntentRef
			if err := withRetry(cmd.Context(), func() error {
				out, err = c.ListIntents(cmd.Context())
				return err
			}); err != nil {
				return err
			}
			return printJSON(out)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "create NAME",
		Short: "Create an intent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			var out *wit.IntentRef
			if err := withRetry(cmd.Context(), func() error {
				out, err = c.CreateIntent(cmd.Context(), args[0])
				return err
			}); err != nil {
				return err
			}
			return printJSON(out)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get NAME",
		Short: "Show an intent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			var out *wit.Intent
			if err := withRetry(cmd.Context(), func() error {
				out, err = c.GetIntent(cmd.Context(), args[0])
				return err
			}); err != nil {
				return err
			}
			return printJSON(out)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete NAME",
		Short: "Delete an intent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			var out *wit.DeleteResponse
			if err := withRetry(cmd.Context(), func() error {
				out, err = c.DeleteIntent(cmd.Context(), args[0])
				return err
			}); err != nil {
				return err
			}
			return printJSON(out)
		},
	})

	return cmd
}

func newTraitsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "traits", Short: "Manage traits"}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all traits",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			var out []wit.TraitRef
			if err := withRetry(cmd.Context(), func() error {
				out, err = c.ListTraits(cmd.Context())
				return err
			}); err != nil {
				return err
			}
			return printJSON(out)
		},
	})

	var values []string
	create := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a trait",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			var out *wit.Trait
			if err := withRetry(cmd.Context(), func() error {
				out, err = c.CreateTrait(cmd.Context(), wit.NewTrait{Name: args[0], Values: values})
				return err
			}); err != nil {
				return err
			}
			return printJSON(out)
		},
	}
	create.Flags().StringSliceVar(&values, "values", nil, "Allowed values for the trait")
	cmd.AddCommand(create)

	cmd.AddCommand(&cobra.Command{
		Use:   "get NAME",
		Short: "Show a trait",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			var out *wit.Trait
			if err := withRetry(cmd.Context(), func() error {
				out, err = c.GetTrait(cmd.Context(), args[0])
				return err
			}); err != nil {
				return err
			}
			return printJSON(out)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a trait",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			var out *wit.DeleteResponse
			if err := withRetry(cmd.Context(), func() error {
				out, err = c.DeleteTrait(cmd.Context(), args[0])
				return err
			}); err != nil {
				return err
			}
			return printJSON(out)
		},
	})

	return cmd
}

func newUtterancesCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "utterances", Short: "Manage training utterances"}

	var limit, offset int
	var intents []string
	list := &cobra.Command{
		Use:   "list",
		Short: "List stored utterances",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			var out []wit.Utterance
			if err := withRetry(cmd.Context(), func() error {
				out, err = c.ListUtterances(cmd.Context(), wit.ListUtterancesRequest{
					Limit:   limit,
					Offset:  offset,
					Intents: intents,
				})
				return err
			}); err != nil {
				return err
			}
			return printJSON(out)
		},
	}
	list.Flags().IntVar(&limit, "limit", 100, "Maximum utterances to return (1-10000)")
	list.Flags().IntVar(&offset, "offset", 0, "Utterances to skip")
	list.Flags().StringSliceVar(&intents, "intents", nil, "Restrict to these intents")
	cmd.AddCommand(list)

	var file string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create utterances from a JSON file",
		Long:  "Reads a JSON array of utterances (text, intent, entities, traits) and submits them in one call.",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(file)
			if err != nil {
				return err
			}
			utterances, err := decodeUtterances(raw)
			if err != nil {
				return err
			}
			c, err := newClient()
			if err != nil {
				return err
			}
			var out *wit.UtteranceAck
			if err := withRetry(cmd.Context(), func() error {
				out, err = c.CreateUtterances(cmd.Context(), utterances)
				return err
			}); err != nil {
				return err
			}
			return printJSON(out)
		},
	}
	create.Flags().StringVarP(&file, "file", "f", "", "Path to a JSON array of utterances")
	_ = create.MarkFlagRequired("file")
	cmd.AddCommand(create)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete TEXT...",
		Short: "Delete utterances by text, in one batch call",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			var out *wit.UtteranceAck
			if err := withRetry(cmd.Context(), func() error {
				out, err = c.DeleteUtterances(cmd.Context(), args)
				return err
			}); err != nil {
				return err
			}
			return printJSON(out)
		},
	})

	return cmd
}

func newMessageCmd() *cobra.Command {
	var limit int
	var tag string
	cmd := &cobra.Command{
		Use:   "message TEXT",
		Short: "Analyze a text message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			var out *wit.MessageResponse
			if err := withRetry(cmd.Context(), func() error {
				out, err = c.Message(cmd.Context(), args[0], wit.MessageOptions{Limit: limit, Tag: tag})
				return err
			}); err != nil {
				return err
			}
			return printJSON(out)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Number of n-best intents and traits (1-8)")
	cmd.Flags().StringVar(&tag, "tag", "", "App version tag")
	return cmd
}

func newLanguageCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "language TEXT",
		Short: "Detect the language of a text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			var out *wit.LanguageResponse
			if err := withRetry(cmd.Context(), func() error {
				out, err = c.DetectLanguage(cmd.Context(), args[0], limit)
				return err
			}); err != nil {
				return err
			}
			return printJSON(out)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Number of ranked guesses (1-8)")
	return cmd
}

func newDictationCmd() *cobra.Command {
	var encoding string
	cmd := &cobra.Command{
		Use:   "dictation FILE",
		Short: "Transcribe an audio file, printing chunks as they arrive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer func() { _ = f.Close() }()

			stream, err := c.Dictation(cmd.Context(), f, audioEncoding(encoding, args[0]))
			if err != nil {
				return err
			}
			for chunk, err := range stream.Iter() {
				if err != nil {
					return err
				}
				if err := printJSON(chunk); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&encoding, "encoding", "", "Audio content type (default from file extension)")
	return cmd
}

func newSpeechCmd() *cobra.Command {
	var encoding string
	cmd := &cobra.Command{
		Use:   "speech FILE",
		Short: "Transcribe and analyze an audio file, printing chunks as they arrive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer func() { _ = f.Close() }()

			stream, err := c.Speech(cmd.Context(), f, audioEncoding(encoding, args[0]))
			if err != nil {
				return err
			}
			for chunk, err := range stream.Iter() {
				if err != nil {
					return err
				}
				if err := printJSON(chunk); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&encoding, "encoding", "", "Audio content type (default from file extension)")
	return cmd
}

// audioEncoding resolves the declared encoding, falling back to the file
// extension.
func audioEncoding(flag, path string) wit.AudioEncoding {
	if flag != "" {
		return wit.AudioEncoding(flag)
	}
	switch {
	case strings.HasSuffix(path, ".wav"):
		return wit.AudioWAV
	case strings.HasSuffix(path, ".mp3"):
		return wit.AudioMP3
	case strings.HasSuffix(path, ".ogg"):
		return wit.AudioOGG
	default:
		return ""
	}
}

// decodeUtterances parses a JSON array of new utterances.
func decodeUtterances(raw []byte) ([]wit.NewUtterance, error) {
	var utterances []wit.NewUtterance
	if err := json.Unmarshal(raw, &utterances); err != nil {
		return nil, fmt.Errorf("parsing utterances: %w", err)
	}
	return utterances, nil
}
