package cli

import (
	"fmt"
	"os"

	"github.com/randalmurphal/factorykit/pkg/factorykit/builder"
	"github.com/randalmurphal/factorykit/pkg/factorykit/car"
	"github.com/randalmurphal/factorykit/pkg/factorykit/config"
	"github.com/randalmurphal/factorykit/pkg/factorykit/document"
	"github.com/spf13/cobra"
)

func (a *app) editCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <format> <file>",
		Short: "Edit a file through the creator registered for format",
		Example: `  factorykit edit json report
  factorykit edit xml report`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := document.NewClient(a.formats, a.opts...)
			out, err := client.Edit(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func (a *app) suvCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "suv <brand>",
		Short:   "Order the SUV of a brand",
		Example: "  factorykit suv Benz",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			suv, err := car.NewClient(a.brands, a.opts...).OrderSUV(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), suv.Describe())
			return nil
		},
	}
}

func (a *app) coupeCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "coupe <brand>",
		Short:   "Order the coupe of a brand",
		Example: "  factorykit coupe Bmw",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			coupe, err := car.NewClient(a.brands, a.opts...).OrderCoupe(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), coupe.Describe())
			return nil
		},
	}
}

func (a *app) buildCommand() *cobra.Command {
	var (
		output string
		spec   string
	)

	cmd := &cobra.Command{
		Use:   "build <brand>",
		Short: "Build a car through a director",
		Long: `Build a car with the builder registered for brand.

The Custom brand reads hp, wheel and body from --spec (a yaml or json file)
and from the --hp, --wheel and --body flags, flags winning.`,
		Example: `  factorykit build Bmw
  factorykit build Custom --hp 300 --body wagon --output yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var fromFile config.Config
			if spec != "" {
				loaded, err := config.FromFile(spec)
				if err != nil {
					return err
				}
				fromFile = loaded
			}
			fromFlags := config.Config{}
			if cmd.Flags().Changed(builder.ArgHP) {
				hp, _ := cmd.Flags().GetInt(builder.ArgHP)
				fromFlags = fromFlags.With(builder.ArgHP, hp)
			}
			if cmd.Flags().Changed(builder.ArgWheel) {
				wheel, _ := cmd.Flags().GetInt(builder.ArgWheel)
				fromFlags = fromFlags.With(builder.ArgWheel, wheel)
			}
			if cmd.Flags().Changed(builder.ArgBody) {
				body, _ := cmd.Flags().GetString(builder.ArgBody)
				fromFlags = fromFlags.With(builder.ArgBody, body)
			}
			buildArgs := fromFile.Merge(fromFlags)

			c, err := builder.NewClient(a.builders, a.opts...).BuildWith(cmd.Context(), args[0], buildArgs)
			if err != nil {
				return err
			}

			if output == "" {
				fmt.Fprintln(cmd.OutOrStdout(), c.Describe())
				return nil
			}
			creator, err := a.formats.Resolve(output)
			if err != nil {
				return fmt.Errorf("output format: %w", err)
			}
			data, err := creator.Make().Encode(map[string]any{"car": c.Spec()})
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "render the car in a registered format instead of a description")
	cmd.Flags().StringVar(&spec, "spec", "", "file with construction arguments")
	cmd.Flags().Int(builder.ArgHP, 0, "engine horsepower (Custom)")
	cmd.Flags().Int(builder.ArgWheel, 0, "wheel size in inches (Custom)")
	cmd.Flags().String(builder.ArgBody, "", "body shape (Custom)")
	return cmd
}

func (a *app) convertCommand() *cobra.Command {
	var (
		to  string
		out string
	)

	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Convert a document between registered formats",
		Long: `Convert a document to another registered format. The source format is
taken from the file extension.`,
		Example: "  factorykit convert staff.xml --to json",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := document.NewConverter(a.formats).ConvertFile(args[0], to)
			if err != nil {
				return err
			}
			if out == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&to, "to", "t", document.FormatJSON, "target format")
	cmd.Flags().StringVarP(&out, "out", "O", "", "write to this file instead of stdout")
	return cmd
}

func (a *app) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the registered keys of every registry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, reg := range []struct {
				name string
				keys []string
			}{
				{a.formats.Name(), a.formats.Keys()},
				{a.brands.Name(), a.brands.Keys()},
				{a.builders.Name(), a.builders.Keys()},
			} {
				fmt.Fprintf(cmd.OutOrStdout(), "%s:", reg.name)
				for _, k := range reg.keys {
					fmt.Fprintf(cmd.OutOrStdout(), " %s", k)
				}
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	}
}
