package logic

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/idelchi/hillc/internal/config"
)

type inspection struct {
	Alphabet    string  `yaml:"alphabet"`
	Modulus     int     `yaml:"modulus"`
	Key         string  `yaml:"key"`
	UsedKey     string  `yaml:"used_key"`
	Status      string  `yaml:"status"`
	Determinant int     `yaml:"determinant"`
	Matrix      [][]int `yaml:"matrix,flow"`
	Inverse     [][]int `yaml:"inverse,flow"`
}

// RunInspect prepares the configured key as encryption would and prints its matrix, determinant,
// inverse and status.
func RunInspect(cfg *config.Config, logger *zap.Logger, streams IO) error {
	engine, keyString, err := loadEngine(cfg)
	if err != nil {
		return err
	}

	key, err := prepareKey(engine, keyString, logger, nil)
	if err != nil {
		return err
	}

	alphabet := engine.Alphabet()

	report := inspection{
		Alphabet:    alphabet.Name(),
		Modulus:     alphabet.Modulus(),
		Key:         key.Input,
		UsedKey:     key.Used,
		Status:      key.Status.String(),
		Determinant: key.Determinant,
		Matrix:      key.Matrix.Rows(),
		Inverse:     key.Inverse.Rows(),
	}

	if cfg.Format == "yaml" {
		encoder := yaml.NewEncoder(streams.Out)
		encoder.SetIndent(2) //nolint:mnd

		if err := encoder.Encode(report); err != nil {
			return fmt.Errorf("encoding inspection: %w", err)
		}

		return encoder.Close()
	}

	printInspection(streams.Out, report)

	return nil
}

func printInspection(w io.Writer, r inspection) {
	fmt.Fprintf(w, "Alphabet:     %s (mod %d)\n", r.Alphabet, r.Modulus)
	fmt.Fprintf(w, "Key:          %s\n", r.Key)
	fmt.Fprintf(w, "Used key:     %s\n", r.UsedKey)
	fmt.Fprintf(w, "Status:       %s\n", r.Status)
	fmt.Fprintf(w, "Determinant:  %d\n", r.Determinant)
	printRows(w, "Matrix:", r.Matrix)
	printRows(w, "Inverse:", r.Inverse)
}

func printRows(w io.Writer, label string, rows [][]int) {
	for i, row := range rows {
		cells := make([]string, len(row))
		for j, n := range row {
			cells[j] = fmt.Sprintf("%3d", n)
		}

		if i > 0 {
			label = ""
		}

		fmt.Fprintf(w, "%-13s%s\n", label, strings.Join(cells, ""))
	}
}
