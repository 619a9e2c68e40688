package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jhoicas/libreria-consola/internal/application/auth"
	"github.com/jhoicas/libreria-consola/internal/application/dto"
	"github.com/jhoicas/libreria-consola/internal/application/inventory"
	"github.com/jhoicas/libreria-consola/internal/domain"
	"github.com/jhoicas/libreria-consola/internal/domain/entity"
	"github.com/jhoicas/libreria-consola/internal/infrastructure/libreria"
	"github.com/jhoicas/libreria-consola/pkg/config"
	"github.com/jhoicas/libreria-consola/pkg/logger"
)

// --- Flags globales ---
var (
	backendURL string
	email      string
	password   string
	verbose    bool

	pointOfSale int
	cantidad    int
)

// deps se arma en PersistentPreRunE y lo usan todos los subcomandos.
var deps struct {
	stock  *inventory.StockUseCase
	alerts *inventory.AlertsUseCase
	sess   entity.Session
}

var (
	rootCmd = &cobra.Command{
		Use:               "libreriactl",
		Short:             "Inventario de la librería desde la terminal",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}

	alertasCmd = &cobra.Command{
		Use:   "alertas",
		Short: "Libros y materias primas por debajo de su stock mínimo",
		Args:  cobra.NoArgs,
		RunE:  runAlertas,
	}

	inventarioCmd = &cobra.Command{
		Use:   "inventario",
		Short: "Inventario global o de un punto de venta (--pv)",
		Args:  cobra.NoArgs,
		RunE:  runInventario,
	}

	ajustarCmd = &cobra.Command{
		Use:   "ajustar <id_inventario> <delta>",
		Short: "Ajusta el stock de un registro de inventario (delta con signo; usar -- antes de negativos)",
		Args:  cobra.ExactArgs(2),
		RunE:  runAjustar,
	}

	venderCmd = &cobra.Command{
		Use:   "vender <id_inventario>",
		Short: "Registra una venta (por defecto una unidad)",
		Args:  cobra.ExactArgs(1),
		RunE:  runVender,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&backendURL, "backend", "", "URL base de la API (por defecto BACKEND_BASE_URL)")
	rootCmd.PersistentFlags().StringVar(&email, "email", os.Getenv("LIBRERIA_EMAIL"), "email para identificar las operaciones")
	rootCmd.PersistentFlags().StringVar(&password, "password", os.Getenv("LIBRERIA_PASSWORD"), "contraseña")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "registra cada llamada al backend")

	inventarioCmd.Flags().IntVar(&pointOfSale, "pv", 0, "punto de venta (0 = todos)")
	ajustarCmd.Flags().IntVar(&pointOfSale, "pv", 0, "punto de venta de la tabla a mostrar después del ajuste")
	venderCmd.Flags().IntVarP(&cantidad, "cantidad", "n", 1, "unidades vendidas")

	rootCmd.AddCommand(alertasCmd, inventarioCmd, ajustarCmd, venderCmd)
}

func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if backendURL != "" {
		cfg.Backend.BaseURL = backendURL
	}

	log := logger.Nop()
	if verbose {
		log = logger.New(logger.Config{Env: "development", Level: "debug", Out: os.Stderr})
	}
	client := libreria.New(cfg.Backend.BaseURL, cfg.Backend.Timeout(), libreria.WithLogger(log))

	deps.stock = inventory.NewStockUseCase(client, client, nil, log)
	deps.alerts = inventory.NewAlertsUseCase(client, client)
	deps.sess = entity.Session{Nombre: "libreriactl", Rol: entity.RoleAdmin}

	// Con credenciales las operaciones quedan a nombre del usuario; el token no se usa.
	if email != "" {
		authUC := auth.NewAuthUseCase(client, auth.JWTConfig{Secret: uuid.NewString(), ExpMinutes: 1, Issuer: "libreriactl"}, log)
		sess, _, err := authUC.Login(cmd.Context(), dto.LoginRequest{Email: email, Contrasena: password})
		if err != nil {
			return fmt.Errorf("iniciar sesión: %s", userMessage(err))
		}
		deps.sess = sess
	}
	return nil
}

func runAlertas(cmd *cobra.Command, _ []string) error {
	a := deps.alerts.Scan(cmd.Context())
	out := cmd.OutOrStdout()
	if a.BooksErr != nil {
		printWarning(out, "Libros: "+userMessage(a.BooksErr))
	}
	if a.MaterialsErr != nil {
		printWarning(out, "Materias primas: "+userMessage(a.MaterialsErr))
	}
	if a.BooksErr != nil && a.MaterialsErr != nil {
		return errSilent
	}
	printAlerts(out, a.Rows())
	return nil
}

func runInventario(cmd *cobra.Command, _ []string) error {
	t := deps.stock.Table(cmd.Context(), pointOfSale, "")
	printInventory(cmd.OutOrStdout(), t)
	if t.Failed() {
		return errSilent
	}
	return nil
}

func runAjustar(cmd *cobra.Command, args []string) error {
	id, err := positiveArg(args[0], "id_inventario")
	if err != nil {
		return err
	}
	delta, err := strconv.Atoi(args[1])
	if err != nil || delta < -inventory.MaxAdjust || delta > inventory.MaxAdjust {
		return fmt.Errorf("delta debe ser un entero entre %d y %d", -inventory.MaxAdjust, inventory.MaxAdjust)
	}
	return printOutcome(cmd.OutOrStdout(), deps.stock.Adjust(cmd.Context(), deps.sess, id, delta, pointOfSale))
}

// runVender una unidad usa el mismo camino que el botón del vendedor (ajuste -1 con el
// stock actual como guarda); varias unidades se registran como movimiento "venta".
func runVender(cmd *cobra.Command, args []string) error {
	id, err := positiveArg(args[0], "id_inventario")
	if err != nil {
		return err
	}
	if cantidad < 1 || cantidad > inventory.MaxSaleQty {
		return fmt.Errorf("cantidad debe estar entre 1 y %d", inventory.MaxSaleQty)
	}
	ctx := cmd.Context()
	if cantidad > 1 {
		return printOutcome(cmd.OutOrStdout(), deps.stock.RecordSale(ctx, deps.sess, id, cantidad, 0))
	}
	stock, err := currentStock(ctx, id)
	if err != nil {
		return fmt.Errorf("%s", userMessage(err))
	}
	return printOutcome(cmd.OutOrStdout(), deps.stock.SellOne(ctx, deps.sess, id, stock))
}

func currentStock(ctx context.Context, id int) (int, error) {
	records, err := deps.stock.Records(ctx, 0, "")
	if err != nil {
		return 0, err
	}
	for _, r := range records {
		if r.ID == id {
			return r.Stock, nil
		}
	}
	return 0, fmt.Errorf("registro de inventario %d: %w", id, domain.ErrNotFound)
}

func positiveArg(raw, name string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s debe ser un entero positivo", name)
	}
	return n, nil
}
