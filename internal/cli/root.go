package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	Provider          string
	Endpoint          string
	ApplicationKey    string
	ApplicationSecret string
	ConsumerKey       string
	CloudflareToken   string
)

var Version = "dev"

var rootCmd = &cobra.Command{
	Use:     "ovhsync",
	Short:   "Declarative DNS record and IP reconciliation tool",
	Long:    "Ovhsync converges DNS zone records, load balancer backends and IP reverses to a declared state through the provider API.",
	Version: Version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&Provider, "provider", "ovh", "DNS provider (ovh/cloudflare)")
	rootCmd.PersistentFlags().StringVar(&Endpoint, "endpoint", "", "OVH API endpoint (e.g. ovh-eu), defaults to OVH_ENDPOINT")
	rootCmd.PersistentFlags().StringVar(&ApplicationKey, "application-key", "", "OVH application key, defaults to OVH_APPLICATION_KEY")
	rootCmd.PersistentFlags().StringVar(&ApplicationSecret, "application-secret", "", "OVH application secret, defaults to OVH_APPLICATION_SECRET")
	rootCmd.PersistentFlags().StringVar(&ConsumerKey, "consumer-key", "", "OVH consumer key, defaults to OVH_CONSUMER_KEY")
	rootCmd.PersistentFlags().StringVar(&CloudflareToken, "cf-api-token", "", "Cloudflare API token, defaults to CLOUDFLARE_API_TOKEN")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
