package cmd

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/jvalva/consulta/internal/app"
	"github.com/jvalva/consulta/internal/config"
	"github.com/jvalva/consulta/internal/logger"
)

var (
	serverURL             string
	debugMode             bool
	quietMode             bool
	clearLogs             bool
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "consulta",
	Short: "Panel de consultas del IESTP Juan Velasco Alvarado",
	Long: `Consulta abre un panel flotante de chat sobre la terminal para resolver
dudas sobre los trámites del IESTP Juan Velasco Alvarado. El panel se puede
mover, redimensionar y minimizar sin perder la conversación, y habla con el
backend de trámites del instituto.`,
	RunE:          runPanel,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initLogging)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", true, "Activar registro de depuración (activado por defecto)")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reducir el registro al nivel informativo")
	rootCmd.Flags().StringVar(&serverURL, "server", "", "Dirección del backend (anula la guardada en la configuración)")
	rootCmd.Flags().BoolVar(&clearLogs, "clear-logs", false, "Eliminar los archivos de registro y salir")
}

func initLogging() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	// Set version dynamically
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("consulta %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("consulta %s\n", version)
}

func runPanel(cmd *cobra.Command, args []string) error {
	if clearLogs {
		count, err := logger.ClearLogs()
		if err != nil {
			return fmt.Errorf("error al eliminar los registros: %w", err)
		}
		fmt.Printf("Se eliminaron %d archivo(s) de registro.\n", count)
		return nil
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error al cargar la configuración: %w", err)
	}
	if serverURL != "" {
		cfg.SetServerURL(serverURL)
	}

	// Ensure logger is closed on exit
	defer logger.Close()

	// Create and run the panel
	m := app.New(cfg, version)
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error al ejecutar el panel: %w", err)
	}
	return nil
}
