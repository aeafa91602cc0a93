package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alseiny20/bkbweb-go/internal/admin"
	"github.com/alseiny20/bkbweb-go/internal/money"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Panneau d'administration",
}

var adminPassword string

var adminLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Se connecter en tant qu'administrateur",
	Args:  cobra.NoArgs,
	RunE:  runAdminLogin,
}

var adminLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Se déconnecter",
	Args:  cobra.NoArgs,
	RunE:  runAdminLogout,
}

var adminOrdersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Lister les commandes",
	Args:  cobra.NoArgs,
	RunE:  runAdminOrders,
}

var adminServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Servir le panneau d'administration web en local",
	Args:  cobra.NoArgs,
	RunE:  runAdminServe,
}

func init() {
	adminLoginCmd.Flags().StringVar(&adminPassword, "password", "", "mot de passe (demandé si absent)")
	adminCmd.AddCommand(adminLoginCmd, adminLogoutCmd, adminOrdersCmd, adminServeCmd)
	rootCmd.AddCommand(adminCmd)
}

func runAdminLogin(cmd *cobra.Command, args []string) error {
	password := adminPassword
	if password == "" {
		fmt.Print("Mot de passe : ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return fmt.Errorf("lecture du mot de passe: %w", err)
		}
		password = strings.TrimSpace(line)
	}

	if err := a.session.Login(cmd.Context(), password); err != nil {
		if errors.Is(err, admin.ErrInvalidPassword) {
			fmt.Println("Mot de passe incorrect.")
			return nil
		}
		return err
	}
	fmt.Println("Connecté en tant qu'administrateur.")
	return nil
}

func runAdminLogout(cmd *cobra.Command, args []string) error {
	if err := a.session.Logout(); err != nil {
		return err
	}
	fmt.Println("Déconnecté.")
	return nil
}

func runAdminOrders(cmd *cobra.Command, args []string) error {
	if !a.session.Authenticated() {
		fmt.Println("Connectez-vous d'abord : bkbweb admin login")
		return nil
	}

	orders, err := a.backend.ListOrders(cmd.Context())
	if err != nil {
		fmt.Println("Erreur lors de la récupération des commandes.")
		a.log.Warn("orders fetch failed", zap.Error(err))
		return nil
	}
	if len(orders) == 0 {
		fmt.Println("Aucune commande.")
		return nil
	}

	for _, o := range orders {
		fmt.Printf("%-12s %-20s %-12s %12s  %s\n",
			o.OrderNumber, o.CustomerName, o.Status, money.FormatGNF(o.TotalAmount),
			o.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func runAdminServe(cmd *cobra.Command, args []string) error {
	panel, err := admin.NewPanel(a.backend, a.session, a.log)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              a.cfg.AdminAddr,
		Handler:           panel.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("admin panel listening", zap.String("addr", a.cfg.AdminAddr))
		fmt.Printf("Panneau d'administration : http://%s/\n", a.cfg.AdminAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-cmd.Context().Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.log.Warn("admin panel shutdown", zap.Error(err))
	}
	a.log.Info("admin panel stopped")
	return nil
}
