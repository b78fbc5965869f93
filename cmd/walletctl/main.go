package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/multierr"

	"github.com/angelmondragon/cardano-wallet-go/pkg/cardano"
	"github.com/angelmondragon/cardano-wallet-go/pkg/config"
	"github.com/angelmondragon/cardano-wallet-go/pkg/enums"
	"github.com/angelmondragon/cardano-wallet-go/pkg/logger"
)

func main() {
	ctx := context.Background()
	// bootstrap logger early (then re-init after config load)
	logg := logger.New(logger.Options{ServiceName: "walletctl"})

	_ = godotenv.Load()

	cmd := flag.String("cmd", "status", "command: status|wallets|network|addresses|transactions|delete")
	walletID := flag.String("wallet", "", "wallet id (for addresses|transactions|delete)")
	state := flag.String("state", "", "address filter: used|unused (for addresses)")

	flag.Parse()

	cfg, err := config.Load()
	requireResource(ctx, logg, "config", err)

	logg = logger.New(logger.Options{
		ServiceName: "walletctl",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx = logg.WithFields(context.Background(), map[string]any{
		"base_url": cfg.Wallet.NormalizedBaseURL(),
		"cmd":      *cmd,
	})

	client, err := cardano.NewClient(cfg.Wallet.NormalizedBaseURL(),
		cardano.WithHTTPClient(&http.Client{Timeout: cfg.Wallet.RequestTimeout}),
		cardano.WithLogger(logg),
		cardano.WithUserAgent("walletctl"),
	)
	requireResource(ctx, logg, "cardano client", err)

	switch *cmd {
	case "status":
		statusCtx, cancel := context.WithTimeout(ctx, cfg.Wallet.RequestTimeout)
		err := statusReport(statusCtx, client)
		cancel()
		if err != nil {
			fail(ctx, logg, "status failed", err)
		}

	case "wallets":
		wallets, err := cardano.DoSync(client, cardano.ListWallets(), cfg.Wallet.RequestTimeout)
		if err != nil {
			fail(ctx, logg, "list wallets failed", err)
		}
		for _, w := range wallets {
			fmt.Printf("%s\t%s\t%s ADA\n", w.ID, w.Name, w.Balance.Total.Ada())
		}

	case "network":
		info, err := cardano.DoSync(client, cardano.NetworkInformation(), cfg.Wallet.RequestTimeout)
		if err != nil {
			fail(ctx, logg, "network info failed", err)
		}
		printJSON(info)

	case "addresses":
		requireWallet(*walletID)
		var filter *enums.AddressFilter
		if *state != "" {
			parsed, err := enums.ParseAddressFilter(*state)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			filter = &parsed
		}
		addrs, err := cardano.DoSync(client, cardano.ListAddresses(*walletID, filter), cfg.Wallet.RequestTimeout)
		if err != nil {
			fail(ctx, logg, "list addresses failed", err)
		}
		printJSON(addrs)

	case "transactions":
		requireWallet(*walletID)
		txs, err := cardano.DoSync(client, cardano.ListTransactions(cardano.ListTransactionsParams{WalletID: *walletID}), cfg.Wallet.RequestTimeout)
		if err != nil {
			fail(ctx, logg, "list transactions failed", err)
		}
		for _, tx := range txs {
			fmt.Printf("%s\t%s\t%s\t%s ADA\n", tx.ID, tx.Direction, tx.Status, tx.Amount.Ada())
		}

	case "delete":
		requireWallet(*walletID)
		if _, err := cardano.DoSync(client, cardano.DeleteWallet(*walletID), cfg.Wallet.RequestTimeout); err != nil {
			fail(ctx, logg, "delete wallet failed", err)
		}
		fmt.Println("deleted wallet:", *walletID)

	default:
		fmt.Fprintln(os.Stderr, "unknown -cmd value:", *cmd)
		os.Exit(1)
	}
}

// statusReport fetches network state and the wallet listing together and
// reports every failure, not just the first.
func statusReport(ctx context.Context, client *cardano.Client) error {
	var errs []error

	info, err := cardano.Do(ctx, client, cardano.NetworkInformation())
	if err != nil {
		errs = append(errs, fmt.Errorf("network: %w", err))
	} else {
		fmt.Printf("network: %s (epoch %d, slot %d)\n",
			info.SyncProgress.Status, info.NetworkTip.EpochNumber, info.NetworkTip.SlotNumber)
	}

	wallets, err := cardano.Do(ctx, client, cardano.ListWallets())
	if err != nil {
		errs = append(errs, fmt.Errorf("wallets: %w", err))
	} else {
		fmt.Printf("wallets: %d\n", len(wallets))
		for _, w := range wallets {
			fmt.Printf("  %s\t%s\t%s ADA\n", w.ID, w.Name, w.Balance.Total.Ada())
		}
	}

	return multierr.Combine(errs...)
}

func printJSON(value any) {
	encoded, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode output: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(encoded))
}

func requireWallet(walletID string) {
	if walletID == "" {
		fmt.Fprintln(os.Stderr, "missing -wallet")
		os.Exit(1)
	}
}

func fail(ctx context.Context, logg *logger.Logger, msg string, err error) {
	if apiErr := cardano.AsErrorMessage(err); apiErr != nil {
		logg.Error(ctx, msg, apiErr)
		fmt.Fprintf(os.Stderr, "%s: %s (%s)\n", msg, apiErr.Message, apiErr.Code)
		os.Exit(1)
	}
	logg.Error(ctx, msg, err)
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}

func requireResource(ctx context.Context, logg *logger.Logger, resource string, err error) {
	if err == nil {
		return
	}
	logg.Error(ctx, fmt.Sprintf("resource not working: %s", resource), err)
	os.Exit(1)
}
