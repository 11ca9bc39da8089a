package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/thornfall/internal/config"
)

var flagLevels int

var curveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Show the difficulty table",
	Long: `Show spawn interval, enemy speed and obstacle cap for each level.

A level lasts 1000 points. Survival pays one point per bug on screen
per tick, and every thorn kill adds a bonus.

Examples:
  thornfall curve
  thornfall curve --levels 25 --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runCurve,
}

func init() {
	addGameFlags(curveCmd)
	curveCmd.Flags().IntVar(&flagLevels, "levels", 15, "Number of levels to show")
}

var (
	curveHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2E8B57")).Padding(0, 1)
	curveCellStyle   = lipgloss.NewStyle().Padding(0, 1)
	curveBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

func runCurve(_ *cobra.Command, _ []string) {
	if flagLevels < 1 {
		fmt.Fprintln(os.Stderr, "Error: --levels must be at least 1")
		os.Exit(1)
	}

	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(curveTable(cfg.Difficulty, flagLevels))
	if !cfg.Difficulty.Enabled {
		fmt.Println("Progression is disabled: every level uses the level 1 values.")
	}
}

// curveTable renders the difficulty parameters for levels 1..levels.
func curveTable(cfg config.DifficultyConfig, levels int) string {
	dc := config.NewDifficultyController(cfg)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(curveBorderStyle).
		Headers("Level", "From score", "Spawn every", "Speed", "Max on screen").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return curveHeaderStyle
			}
			return curveCellStyle
		})

	for level := 1; level <= levels; level++ {
		st := dc.StateForLevel(level)
		t.Row(
			strconv.Itoa(st.Level),
			strconv.Itoa((level-1)*config.PointsPerLevel),
			st.SpawnInterval.String(),
			strconv.FormatFloat(st.EnemySpeed, 'f', 2, 64),
			strconv.Itoa(st.MaxOnScreen),
		)
	}

	return t.String()
}
