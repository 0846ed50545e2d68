// Package main is the command-line frontend for DulceStock, a home-bakery
// stock and order manager persisting to a local SQLite database.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"dulcestock/internal/core/types"
	"dulcestock/internal/domain/costing"
	"dulcestock/internal/domain/inventory"
	"dulcestock/internal/domain/order"
	"dulcestock/internal/domain/recipe"
	"dulcestock/internal/domain/settings"
	"dulcestock/internal/infrastructure/backup"
	"dulcestock/internal/infrastructure/share"
	"dulcestock/internal/infrastructure/storage/kvrepo"
	"dulcestock/internal/infrastructure/storage/sqlite"
	"dulcestock/pkg/logger"
)

const usage = `DulceStock - home bakery manager

Usage: dulcestock <command> [arguments]

Commands:
  inventory list
  inventory add -name NAME -cost PRICE -net QTY -unit gr|kg|ml|l [-available QTY]
  inventory restock ID       add one package's worth of content
  inventory consume ID       remove one package's worth of content
  inventory rm ID
  recipe list
  recipe add -name NAME -yield N -line ITEMID:QTY:UNIT [-line ...]
  recipe rm ID
  order list [-status PENDING|IN_PROGRESS|DELIVERED] [-q TEXT]
  order add -customer NAME -recipe RECIPEID [-batches N]
  order advance ID           move one step forward (consumes stock on start)
  order share ID [-dir DIR]  print or export the order summary
  order rm ID
  cost RECIPEID              batch cost, unit cost and suggested price
  settings show
  settings set -margin PCT
  backup FILE
  restore FILE

Environment:
  DULCESTOCK_DB   database path (default dulcestock.db)
  LOG_LEVEL       debug, info, warn, error (default warn)
`

type app struct {
	store    *sqlite.Store
	ledger   *inventory.Service
	recipes  *recipe.Service
	orders   *order.Service
	settings *settings.Service
	log      *logger.Logger
}

func main() {
	// A local .env is optional.
	_ = godotenv.Load()

	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "warn"),
		Development: getEnv("APP_ENV", "development") == "development",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	store, err := sqlite.Open(getEnv("DULCESTOCK_DB", "dulcestock.db"))
	if err != nil {
		log.Fatalw("failed to open database", "error", err)
	}
	defer store.Close()

	ledger := inventory.NewService(kvrepo.NewInventory(store), log)
	recipes := recipe.NewService(kvrepo.NewRecipes(store), log)
	settingsSvc := settings.NewService(kvrepo.NewSettings(store), log)
	orders := order.NewService(kvrepo.NewOrders(store), recipes, ledger, settingsSvc, log)

	a := &app{
		store:    store,
		ledger:   ledger,
		recipes:  recipes,
		orders:   orders,
		settings: settingsSvc,
		log:      log,
	}

	if err := a.run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Print(usage)
		return nil
	}

	switch args[0] {
	case "inventory":
		return a.runInventory(ctx, args[1:])
	case "recipe":
		return a.runRecipe(ctx, args[1:])
	case "order":
		return a.runOrder(ctx, args[1:])
	case "cost":
		return a.runCost(ctx, args[1:])
	case "settings":
		return a.runSettings(ctx, args[1:])
	case "backup":
		return a.runBackup(ctx, args[1:])
	case "restore":
		return a.runRestore(ctx, args[1:])
	case "help", "-h", "--help":
		fmt.Print(usage)
		return nil
	default:
		return fmt.Errorf("unknown command %q (run without arguments for usage)", args[0])
	}
}

func (a *app) runInventory(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("inventory: missing subcommand")
	}

	switch args[0] {
	case "list":
		items, err := a.ledger.List(ctx)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Println("no inventory items")
			return nil
		}
		for _, it := range items {
			fmt.Printf("%s  %-20s  $%s/package  %s %s per package, %s %s available\n",
				it.ID, it.Name, it.UnitCost.StringFixed(2),
				it.NetContent, it.NetContentUnit,
				it.Available, it.NetContentUnit)
		}
		return nil

	case "add":
		fs := flag.NewFlagSet("inventory add", flag.ContinueOnError)
		name := fs.String("name", "", "ingredient name")
		cost := fs.Float64("cost", 0, "price per package")
		net := fs.Float64("net", 0, "net content per package")
		unit := fs.String("unit", "gr", "unit of the net content (gr, kg, ml, l)")
		available := fs.Float64("available", 0, "quantity currently on hand")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		it, err := a.ledger.Upsert(ctx, inventory.Item{
			Name:           *name,
			UnitCost:       types.NewMoney(*cost),
			NetContent:     types.NewQuantityFromFloat64(*net),
			NetContentUnit: *unit,
			Available:      types.NewQuantityFromFloat64(*available),
		})
		if err != nil {
			return err
		}
		fmt.Printf("added %s (%s)\n", it.Name, it.ID)
		return nil

	case "restock":
		if len(args) < 2 {
			return fmt.Errorf("inventory restock: missing item id")
		}
		return a.ledger.RestockPackage(ctx, args[1])

	case "consume":
		if len(args) < 2 {
			return fmt.Errorf("inventory consume: missing item id")
		}
		return a.ledger.ConsumePackage(ctx, args[1])

	case "rm":
		if len(args) < 2 {
			return fmt.Errorf("inventory rm: missing item id")
		}
		return a.ledger.Remove(ctx, args[1])
	}
	return fmt.Errorf("inventory: unknown subcommand %q", args[0])
}

// lineFlags collects repeated -line ITEMID:QTY:UNIT values.
type lineFlags []recipe.Line

func (l *lineFlags) String() string { return fmt.Sprintf("%d lines", len(*l)) }

func (l *lineFlags) Set(v string) error {
	parts := strings.SplitN(v, ":", 3)
	if len(parts) != 3 {
		return fmt.Errorf("line must be ITEMID:QTY:UNIT, got %q", v)
	}
	qty, err := types.ParseQuantity(parts[1])
	if err != nil {
		return err
	}
	*l = append(*l, recipe.Line{ItemID: parts[0], Qty: qty, Unit: parts[2]})
	return nil
}

func (a *app) runRecipe(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("recipe: missing subcommand")
	}

	switch args[0] {
	case "list":
		recipes, err := a.recipes.List(ctx)
		if err != nil {
			return err
		}
		if len(recipes) == 0 {
			fmt.Println("no recipes")
			return nil
		}
		for _, r := range recipes {
			fmt.Printf("%s  %-20s  yields %d per batch, %d ingredients\n",
				r.ID, r.Name, r.YieldUnits, len(r.Lines))
		}
		return nil

	case "add":
		fs := flag.NewFlagSet("recipe add", flag.ContinueOnError)
		name := fs.String("name", "", "recipe name")
		yield := fs.Int("yield", 1, "finished units per batch")
		var lines lineFlags
		fs.Var(&lines, "line", "ingredient line ITEMID:QTY:UNIT (repeatable)")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		r, err := a.recipes.Upsert(ctx, recipe.Recipe{
			Name:       *name,
			YieldUnits: *yield,
			Lines:      lines,
		})
		if err != nil {
			return err
		}
		fmt.Printf("added %s (%s)\n", r.Name, r.ID)
		return nil

	case "rm":
		if len(args) < 2 {
			return fmt.Errorf("recipe rm: missing recipe id")
		}
		return a.recipes.Remove(ctx, args[1])
	}
	return fmt.Errorf("recipe: unknown subcommand %q", args[0])
}

func (a *app) runOrder(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("order: missing subcommand")
	}

	switch args[0] {
	case "list":
		fs := flag.NewFlagSet("order list", flag.ContinueOnError)
		status := fs.String("status", "", "filter by status")
		query := fs.String("q", "", "match customer or recipe name")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		f := order.Filter{Status: order.Status(strings.ToUpper(*status)), Query: *query}
		if f.Status != "" && !f.Status.Valid() {
			return fmt.Errorf("unknown status %q", *status)
		}
		orders, err := a.orders.Search(ctx, f)
		if err != nil {
			return err
		}
		if len(orders) == 0 {
			fmt.Println("no orders")
			return nil
		}
		for _, o := range orders {
			fmt.Printf("%s  %-20s  %d batches  %s\n", o.ID, o.CustomerName, o.Batches, o.Status)
		}
		return nil

	case "add":
		fs := flag.NewFlagSet("order add", flag.ContinueOnError)
		customer := fs.String("customer", "", "customer name")
		recipeID := fs.String("recipe", "", "recipe id")
		batches := fs.Int("batches", 1, "number of batches")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		o, err := a.orders.Create(ctx, *customer, *recipeID, *batches)
		if err != nil {
			return err
		}
		fmt.Printf("created order %s for %s\n", o.ID, o.CustomerName)
		return nil

	case "advance":
		if len(args) < 2 {
			return fmt.Errorf("order advance: missing order id")
		}
		o, err := a.orders.Advance(ctx, args[1])
		if err != nil {
			return err
		}
		fmt.Printf("order %s is now %s\n", o.ID, o.Status)
		return nil

	case "share":
		if len(args) < 2 {
			return fmt.Errorf("order share: missing order id")
		}
		fs := flag.NewFlagSet("order share", flag.ContinueOnError)
		dir := fs.String("dir", "", "write the summary to a file in this directory instead of stdout")
		if err := fs.Parse(args[2:]); err != nil {
			return err
		}
		o, found, err := a.orders.Get(ctx, args[1])
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("order %s not found", args[1])
		}
		title, body, err := a.orders.Summary(ctx, o)
		if err != nil {
			return err
		}
		var sharer order.Sharer = share.NewConsole(os.Stdout)
		if *dir != "" {
			sharer = share.NewFile(*dir)
		}
		return sharer.Share(ctx, title, body)

	case "rm":
		if len(args) < 2 {
			return fmt.Errorf("order rm: missing order id")
		}
		return a.orders.Remove(ctx, args[1])
	}
	return fmt.Errorf("order: unknown subcommand %q", args[0])
}

func (a *app) runCost(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("cost: missing recipe id")
	}
	r, found, err := a.recipes.Find(ctx, args[0])
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("recipe %s not found", args[0])
	}
	items, err := a.ledger.List(ctx)
	if err != nil {
		return err
	}
	cfg, err := a.settings.Get(ctx)
	if err != nil {
		return err
	}
	cost, err := costing.RecipeCost(r, items)
	if err != nil {
		return err
	}
	price := costing.SuggestedUnitPrice(cost.PerUnit, cfg.MarginPct)
	fmt.Printf("%s (yields %d per batch)\n", r.Name, r.YieldUnits)
	fmt.Printf("  batch cost:      $%s\n", cost.Total.StringFixed(2))
	fmt.Printf("  unit cost:       $%s\n", cost.PerUnit.StringFixed(2))
	fmt.Printf("  suggested price: $%s (margin %s%%)\n", price.StringFixed(2), cfg.MarginPct)
	return nil
}

func (a *app) runSettings(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("settings: missing subcommand")
	}

	switch args[0] {
	case "show":
		cfg, err := a.settings.Get(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("margin: %s%%\n", cfg.MarginPct)
		return nil

	case "set":
		fs := flag.NewFlagSet("settings set", flag.ContinueOnError)
		margin := fs.Float64("margin", settings.DefaultMarginPct, "markup percentage over unit cost")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		return a.settings.Save(ctx, settings.Settings{MarginPct: types.NewMoney(*margin)})
	}
	return fmt.Errorf("settings: unknown subcommand %q", args[0])
}

func (a *app) runBackup(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("backup: missing output file")
	}
	f, err := os.Create(args[0])
	if err != nil {
		return err
	}
	defer f.Close()
	if err := backup.Export(ctx, a.store, f); err != nil {
		return err
	}
	fmt.Printf("backup written to %s\n", args[0])
	return nil
}

func (a *app) runRestore(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("restore: missing input file")
	}
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()
	if err := backup.Restore(ctx, a.store, f); err != nil {
		return err
	}
	fmt.Printf("restored from %s\n", args[0])
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
