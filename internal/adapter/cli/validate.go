package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
	"github.com/spf13/cobra"

	"lending-patterns/internal/domain/registration"
	ucRegistration "lending-patterns/internal/usecase/registration"
)

func ValidateCmd(uc *ucRegistration.Usecase) *cobra.Command {
	var (
		fields []string
		file   string
	)
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate user registration data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := loadUserData(file, fields)
			if err != nil {
				return err
			}
			dto, err := uc.Validate(cmd.Context(), data)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Valid: %t\n", dto.Valid)
			if dto.Valid {
				return nil
			}
			fmt.Fprintln(out, "Errors:")
			for _, e := range dto.Errors {
				fmt.Fprintln(out, e)
			}
			return ErrValidationFailed
		},
	}
	cmd.Flags().StringArrayVarP(&fields, "field", "f", nil, "field as name=value (repeatable, overrides --file)")
	cmd.Flags().StringVar(&file, "file", "", "YAML or JSON file holding the user data")
	return cmd
}

// loadUserData merges the file contents (if any) with name=value pairs.
func loadUserData(file string, pairs []string) (registration.UserData, error) {
	data := registration.UserData{}
	if file != "" {
		b, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read user data: %w", err)
		}
		if err := decodeUserData(b, data); err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}
	}
	for _, p := range pairs {
		name, value, ok := strings.Cut(p, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --field %q (want name=value)", p)
		}
		data[name] = value
	}
	return data, nil
}

// decodeUserData reads top-level mappings from YAML or JSON into data.
// Scalars keep their source text, so 07123456 stays a string of digits
// instead of being resolved as a number.
func decodeUserData(b []byte, data registration.UserData) error {
	f, err := parser.ParseBytes(b, 0)
	if err != nil {
		return err
	}
	for _, doc := range f.Docs {
		var values []*ast.MappingValueNode
		switch n := doc.Body.(type) {
		case nil:
			continue
		case *ast.MappingNode:
			values = n.Values
		case *ast.MappingValueNode:
			values = []*ast.MappingValueNode{n}
		default:
			return fmt.Errorf("user data must be a mapping, got %s", n.Type())
		}
		for _, mv := range values {
			key := mv.Key.GetToken().Value
			v, err := scalarText(mv.Value)
			if err != nil {
				return fmt.Errorf("field %q: %w", key, err)
			}
			data[key] = v
		}
	}
	return nil
}

func scalarText(n ast.Node) (string, error) {
	switch n := n.(type) {
	case nil, *ast.NullNode:
		return "", nil
	case *ast.StringNode:
		return n.Value, nil
	case *ast.LiteralNode:
		return n.Value.Value, nil
	case *ast.TagNode:
		return scalarText(n.Value)
	case ast.ScalarNode:
		return n.GetToken().Value, nil
	default:
		return "", fmt.Errorf("want a scalar, got %s", n.Type())
	}
}
