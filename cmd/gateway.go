/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"

	"clmm-gateway/internal/config"
	"clmm-gateway/internal/handler"
	"clmm-gateway/internal/svc"
)

// gatewayCmd represents the gateway command
var gatewayCmd = &cobra.Command{
	Use:   "gateway",
	Short: "run the swap gateway service",
	Run: func(cmd *cobra.Command, args []string) {
		Start(cfgFile)
	},
}

func init() {
	rootCmd.AddCommand(gatewayCmd)
}

func Start(cfgFile string) {
	godotenv.Load()

	var c config.Config
	conf.MustLoad(cfgFile, &c)
	config.C = c

	logx.MustSetup(c.Log.LogConf)
	defer logx.Close()

	server := rest.MustNewServer(c.Rest.RestConf)
	defer server.Stop()

	ctx := svc.NewServiceContext(c)
	handler.RegisterHandlers(server, ctx)

	fmt.Printf("Starting gateway at %s:%d...\n", c.Rest.Host, c.Rest.Port)
	server.Start()
}
