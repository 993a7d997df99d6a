/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "partshub",
	Short: "Admin API server for the parts shop storefront",
	Long: `partshub is the administrative backend for the parts shop storefront.

It exposes the catalog, content, and quiz CRUD endpoints over Postgres
and issues bearer tokens for authenticated admin sessions.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
