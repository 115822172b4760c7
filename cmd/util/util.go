package util

import (
	"io"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ReadConfig points vip at the config file given by --config, or at
// statcalc.yaml in the working or home directory, and reads it. A
// missing default file is not an error. Env vars are prefixed with
// STATCALC_ and use _ in place of . in keys.
func ReadConfig(cmd *cobra.Command, vip *viper.Viper) error {
	if file, _ := cmd.Flags().GetString("config"); file != "" {
		vip.SetConfigFile(file)
	} else {
		vip.SetConfigName("statcalc")
		vip.AddConfigPath(".")
		vip.AddConfigPath("$HOME")
	}

	vip.SetEnvPrefix("statcalc")
	vip.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	vip.AutomaticEnv()

	if err := vip.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}

	return nil
}

// Number formats f with thousands separators and at most six decimal
// places, trailing zeros are dropped.
func Number(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return humanize.Ftoa(f)
	}
	return humanize.CommafWithDigits(f, 6)
}

// Table returns a borderless table that renders to w.
func Table(w io.Writer, header ...any) table.Writer {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Options.SeparateColumns = false
	tbl.Style().Options.SeparateRows = false
	tbl.AppendHeader(table.Row(header))

	return tbl
}
