package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Green-Future-Society/incident-console/internal/core/domain"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate and persist the session",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := app.enter("login"); err != nil {
			return err
		}

		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")

		resp, err := app.Auth.Login(cmd.Context(), domain.LoginRequest{
			Username: username,
			Password: password,
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", resp.User.Username, resp.User.UserRole)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the session and all persisted client state",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app.Auth.Logout(cmd.Context())
		fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Apply for a new account",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := app.enter("register"); err != nil {
			return err
		}

		name, _ := cmd.Flags().GetString("name")
		msisdn, _ := cmd.Flags().GetString("msisdn")
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		_, err := app.Auth.Register(cmd.Context(), domain.RegistrationRequest{
			Name:     name,
			MSISDN:   msisdn,
			Email:    email,
			Password: password,
		})
		return err
	},
}

var forgotPasswordCmd = &cobra.Command{
	Use:   "forgot-password <msisdn>",
	Short: "Request a password reset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.enter("forgot-password"); err != nil {
			return err
		}
		_, err := app.Auth.ResetPassword(cmd.Context(), args[0])
		return err
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		if !app.Auth.IsAuthenticated() {
			fmt.Fprintln(out, "Not logged in")
			return nil
		}

		sess := app.Auth.Session()
		fmt.Fprintf(out, "Name:     %s\n", app.Auth.DisplayName())
		fmt.Fprintf(out, "Username: %s\n", sess.User.Username)
		fmt.Fprintf(out, "Role:     %s\n", sess.User.UserRole)
		fmt.Fprintf(out, "Status:   %s\n", sess.User.UserStatus)
		if exp, ok := app.Auth.TokenExpiry(); ok {
			fmt.Fprintf(out, "Token:    expires %s\n", exp.Local().Format(time.RFC1123))
		}
		return nil
	},
}

func init() {
	loginCmd.Flags().String("username", "", "account username")
	loginCmd.Flags().String("password", "", "account password")
	_ = loginCmd.MarkFlagRequired("username")
	_ = loginCmd.MarkFlagRequired("password")

	registerCmd.Flags().String("name", "", "full name")
	registerCmd.Flags().String("msisdn", "", "phone number in MSISDN format")
	registerCmd.Flags().String("email", "", "email address")
	registerCmd.Flags().String("password", "", "account password")
	_ = registerCmd.MarkFlagRequired("name")
	_ = registerCmd.MarkFlagRequired("msisdn")
	_ = registerCmd.MarkFlagRequired("email")
	_ = registerCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(loginCmd, logoutCmd, registerCmd, forgotPasswordCmd, whoamiCmd)
}
