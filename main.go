package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"food-order/config"
	httpapi "food-order/internal/api/http"
	"food-order/internal/domain"
	"food-order/internal/service"
	"food-order/internal/storage"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var cfgPath string
	rootCmd := &cobra.Command{
		Use:          "food-order",
		Short:        "food ordering persistence service",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "config.yaml", "path to YAML config")

	loadConfig := func() (config.Config, error) {
		return config.Load(cfgPath)
	}

	rootCmd.AddCommand(
		serveCommand(loadConfig),
		migrateCommand(loadConfig),
		seedCommand(loadConfig),
		ordersCommand(loadConfig),
		placeOrderCommand(loadConfig),
	)
	return rootCmd
}

type configLoader func() (config.Config, error)

func withStore(ctx context.Context, load configLoader, fn func(cfg config.Config, store *storage.Store) error) error {
	cfg, err := load()
	if err != nil {
		return err
	}
	store, err := config.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(cfg, store)
}

func migrateCommand(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "create missing relations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), load, func(cfg config.Config, store *storage.Store) error {
				fmt.Println("Schema ready:", cfg.StoreDSN())
				return nil
			})
		},
	}
}

func seedCommand(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "load the reference restaurants and menus into an empty store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), load, func(_ config.Config, store *storage.Store) error {
				return service.NewSeeder(store).Seed(cmd.Context())
			})
		},
	}
}

func ordersCommand(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "orders [user-id]",
		Short: "print the order history of a user as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("user id: %w", err)
			}
			return withStore(cmd.Context(), load, func(_ config.Config, store *storage.Store) error {
				orders, err := store.ListOrdersForUser(cmd.Context(), userID)
				if err != nil {
					return err
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(orders)
			})
		},
	}
}

func placeOrderCommand(load configLoader) *cobra.Command {
	var (
		order domain.Order
		items string
		total float64
	)
	cmd := &cobra.Command{
		Use:   "place-order",
		Short: "place an order from a packed item list",
		Example: `  food-order place-order --user 1 --restaurant 1 --address "Main st 1" \
    --payment Онлайн --items "1,2,12.5,2,1,11"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := storage.ParseItemList(items)
			if err != nil {
				return err
			}
			order.Items = parsed
			var statedTotal *float64
			if cmd.Flags().Changed("total") {
				statedTotal = &total
			}
			return withStore(cmd.Context(), load, func(_ config.Config, store *storage.Store) error {
				if err := service.NewOrderService(store, nil, nil).Place(cmd.Context(), &order, statedTotal); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Order %d placed, total %.2f\n", order.ID, order.TotalPrice)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&order.UserID, "user", 0, "user id")
	cmd.Flags().IntVar(&order.RestaurantID, "restaurant", 0, "restaurant id")
	cmd.Flags().StringVar(&order.Address, "address", "", "delivery address")
	cmd.Flags().StringVar(&order.Comment, "comment", "", "comment for the restaurant")
	cmd.Flags().StringVar((*string)(&order.Payment), "payment", string(domain.PaymentOnline), "payment method")
	cmd.Flags().Float64Var(&total, "total", 0, "total price; computed from items when not given")
	cmd.Flags().StringVar(&items, "items", "", "packed items: dishId,quantity,price[,dishId,quantity,price...]")
	cmd.MarkFlagRequired("items")
	return cmd
}

func serveCommand(load configLoader) *cobra.Command {
	var seed bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()
			return serve(ctx, cfg, seed)
		},
	}
	cmd.Flags().BoolVar(&seed, "seed", true, "load the reference catalog when the store is empty")
	return cmd
}

func serve(ctx context.Context, cfg config.Config, seed bool) error {
	store := config.MustInitStore(ctx, cfg)
	defer store.Close()

	if seed {
		if err := service.NewSeeder(store).Seed(ctx); err != nil {
			return err
		}
	}

	handler := &httpapi.Handler{
		Auth:        service.NewAuthService(store),
		Restaurants: service.NewRestaurantService(store),
		Dishes:      service.NewDishService(store),
	}

	var (
		publisher service.OrderPublisher
		cache     service.PopularityStore
	)

	if rdb := config.MustInitRedis(ctx, cfg); rdb != nil {
		defer rdb.Close()
		handler.Sessions = storage.NewSessionStore(rdb, cfg.Redis.SessionTTL)
		popularity := storage.NewPopularityCache(rdb)
		cache = popularity

		if reader := config.NewKafkaReader(cfg); reader != nil {
			defer reader.Close()
			go service.NewConsumer(reader, popularity).Start(ctx)
		}
	}

	if writer := config.NewKafkaWriter(cfg); writer != nil {
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	}

	handler.Orders = service.NewOrderService(store, publisher, service.NewReceiptQR(cfg.HTTP.BaseURL))
	handler.Analytics = service.NewAnalyticsService(store, cache)

	srv := &http.Server{Addr: cfg.HTTP.Addr, Handler: httpapi.NewRouter(handler)}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Printf("Food order service starting on %s (store %s)", cfg.HTTP.Addr, cfg.StoreDSN())
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	log.Println("Food order service stopped")
	return nil
}
