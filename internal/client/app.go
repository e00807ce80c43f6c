package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/atotto/clipboard"
	"github.com/gabriel-vasile/mimetype"

	"github.com/MKhiriev/go-market-keeper/internal/adapter"
	"github.com/MKhiriev/go-market-keeper/internal/logger"
	"github.com/MKhiriev/go-market-keeper/internal/utils"
	"github.com/MKhiriev/go-market-keeper/models"
)

// TokenEnv names the environment variable gated commands read their token
// from.
const TokenEnv = "MARKET_TOKEN"

const usage = `usage: market-client [flags] <command> [args]

commands:
  login -username <name> -password <secret> [-copy]
  me
  upload <file>...
  products [-category <id>] [-limit <n>] [-offset <n>]
  create-product -name <name> -price <cents> [-description <text>] [-category <id>] [-image <upload id>]
  delete-product <id>
`

type App struct {
	adapter adapter.MarketAdapter
	out     io.Writer

	copyToClipboard func(string) error
	readFile        func(string) ([]byte, error)

	logger *logger.Logger
}

func NewApp(marketAdapter adapter.MarketAdapter, out io.Writer, logger *logger.Logger) *App {
	return &App{
		adapter:         marketAdapter,
		out:             out,
		copyToClipboard: clipboard.WriteAll,
		readFile:        os.ReadFile,
		logger:          logger,
	}
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.out, usage)
		return ErrNoCommand
	}

	command, rest := args[0], args[1:]
	switch command {
	case "login":
		return a.login(ctx, rest)
	case "me":
		return a.me(ctx)
	case "upload":
		return a.upload(ctx, rest)
	case "products":
		return a.products(ctx, rest)
	case "create-product":
		return a.createProduct(ctx, rest)
	case "delete-product":
		return a.deleteProduct(ctx, rest)
	case "help", "-h", "--help":
		fmt.Fprint(a.out, usage)
		return nil
	default:
		fmt.Fprint(a.out, usage)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
}

func (a *App) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(a.out)
	username := fs.String("username", "", "admin username")
	password := fs.String("password", "", "admin password")
	copyToken := fs.Bool("copy", false, "copy the token to the clipboard")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *username == "" || *password == "" {
		return fmt.Errorf("%w: -username and -password", ErrMissingArgument)
	}

	resp, err := a.adapter.Login(ctx, models.Credentials{Username: *username, Password: *password})
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	if adminID, err := utils.ParseAdminIDFromJWT(resp.Token); err == nil {
		fmt.Fprintf(a.out, "logged in as admin %d\n", adminID)
	}
	fmt.Fprintf(a.out, "token (expires %s):\n%s\n", resp.ExpiresAt, resp.Token)

	if *copyToken {
		if err = a.copyToClipboard(resp.Token); err != nil {
			a.logger.Err(err).Str("func", "*App.login").Msg("clipboard copy failed")
			return fmt.Errorf("error copying token to clipboard: %w", err)
		}
		fmt.Fprintln(a.out, "token copied to clipboard")
	}
	return nil
}

func (a *App) me(ctx context.Context) error {
	me, err := a.adapter.Me(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "logged in as admin %d\n", me.AdminID)
	return nil
}

func (a *App) upload(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		return fmt.Errorf("%w: at least one file", ErrMissingArgument)
	}

	files := make([]adapter.UploadFile, 0, len(paths))
	for _, path := range paths {
		content, err := a.readFile(path)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", path, err)
		}
		files = append(files, adapter.UploadFile{
			Name:      filepath.Base(path),
			MediaType: mimetype.Detect(content).String(),
			Content:   content,
		})
	}

	resp, err := a.adapter.Upload(ctx, files...)
	for _, result := range resp.Results {
		if result.Upload != nil {
			fmt.Fprintf(a.out, "%s\t%s\n", result.Upload.ID, result.Filename)
		} else {
			fmt.Fprintf(a.out, "FAILED\t%s\t%s\n", result.Filename, result.Error)
		}
	}
	return err
}

func (a *App) products(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("products", flag.ContinueOnError)
	fs.SetOutput(a.out)
	category := fs.Int64("category", 0, "category id")
	limit := fs.Uint64("limit", 0, "page size")
	offset := fs.Uint64("offset", 0, "page offset")
	if err := fs.Parse(args); err != nil {
		return err
	}

	filter := models.ProductFilter{Limit: *limit, Offset: *offset}
	if *category > 0 {
		filter.CategoryID = category
	}

	products, err := a.adapter.ListProducts(ctx, filter)
	if err != nil {
		return err
	}

	for _, p := range products {
		fmt.Fprintf(a.out, "%d\t%s\t%d\n", p.ProductID, p.Name, p.PriceCents)
	}
	return nil
}

func (a *App) createProduct(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("create-product", flag.ContinueOnError)
	fs.SetOutput(a.out)
	name := fs.String("name", "", "product name")
	price := fs.Int64("price", 0, "price in cents")
	description := fs.String("description", "", "product description")
	category := fs.Int64("category", 0, "category id")
	image := fs.String("image", "", "upload id of the product image")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" {
		return fmt.Errorf("%w: -name", ErrMissingArgument)
	}

	input := models.ProductInput{
		Name:        *name,
		Description: *description,
		PriceCents:  *price,
		ImageID:     *image,
	}
	if *category > 0 {
		input.CategoryID = category
	}

	product, err := a.adapter.CreateProduct(ctx, input)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(a.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(product)
}

func (a *App) deleteProduct(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: product id", ErrMissingArgument)
	}

	productID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid product id %q: %w", args[0], err)
	}

	if err = a.adapter.DeleteProduct(ctx, productID); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "product %d deleted\n", productID)
	return nil
}
