// Command catalog-admin is a terminal client for the product catalog API.
// It drives the same store/facade/form stack the catalog page uses.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"text/tabwriter"
	"time"

	"github.com/odelgado/product-catalog/internal/client"
	"github.com/odelgado/product-catalog/internal/config"
	"github.com/odelgado/product-catalog/internal/facade"
	"github.com/odelgado/product-catalog/internal/form"
	"github.com/odelgado/product-catalog/internal/logger"
	"github.com/odelgado/product-catalog/internal/model"
	"github.com/odelgado/product-catalog/internal/state"
)

const requestTimeout = 10 * time.Second

func main() {
	logger.InitJSONLogger(false)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	conf := config.LoadClientFromEnv()

	errorsService := client.NewErrorsService(func(message string) {
		fmt.Fprintln(os.Stderr, "API error:", message)
	})
	httpService := client.NewHTTPService(&http.Client{Timeout: requestTimeout}, errorsService)
	urls := client.NewURLResources(conf.APIBaseURL)

	getAllService := client.NewGetAllProductsService(httpService, urls)
	addService := client.NewAddProductService(httpService, urls)
	updateService := client.NewUpdateProductService(httpService, urls)
	deleteService := client.NewDeleteProductService(httpService, urls)
	verifyService := client.NewVerifyProductIDService(httpService, urls)

	productsStore := state.NewProductsStore(getAllService, updateService, deleteService)
	productsFacade := facade.NewProductsFacade(
		productsStore,
		state.NewAddProductModalStore(),
		state.NewEditProductModalStore(),
		state.NewDeleteProductModalStore(),
		addService,
		verifyService,
	)

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	switch os.Args[1] {
	case "list":
		runList(ctx, productsFacade, "")
	case "search":
		if len(os.Args) < 3 {
			log.Fatal("usage: catalog-admin search <term>")
		}
		runList(ctx, productsFacade, os.Args[2])
	case "add":
		runAdd(ctx, productsFacade, os.Args[2:])
	case "update":
		runUpdate(ctx, productsFacade, os.Args[2:])
	case "delete":
		if len(os.Args) < 3 {
			log.Fatal("usage: catalog-admin delete <id>")
		}
		runDelete(ctx, productsFacade, os.Args[2])
	case "verify":
		if len(os.Args) < 3 {
			log.Fatal("usage: catalog-admin verify <id>")
		}
		exists := productsFacade.ValidateProductID(ctx, os.Args[2])
		fmt.Println(exists)
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: catalog-admin <command> [args]

commands:
  list                      print the product table
  search <term>             print products matching the term
  add [flags]               create a product
  update <id> [flags]       update a product
  delete <id>               delete a product
  verify <id>               check whether an id is taken`)
}

func runList(ctx context.Context, f *facade.ProductsFacade, term string) {
	f.LoadProducts(ctx)
	if msg := f.Error(); msg != "" {
		log.Fatal(msg)
	}
	if term != "" {
		f.UpdateSearchTerm(term)
	}
	renderTable(f.TableData())
}

func runAdd(ctx context.Context, f *facade.ProductsFacade, args []string) {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	id := fs.String("id", "", "product id")
	name := fs.String("name", "", "product name")
	description := fs.String("description", "", "product description")
	logo := fs.String("logo", "", "logo URL")
	release := fs.String("release", "", "release date (YYYY-MM-DD)")
	fs.Parse(args)

	productForm := buildForm(ctx, f, false, nil)
	productForm.UpdateField(form.FieldID, *id)
	productForm.UpdateField(form.FieldName, *name)
	productForm.UpdateField(form.FieldDescription, *description)
	productForm.UpdateField(form.FieldLogo, *logo)
	productForm.UpdateField(form.FieldDateReleased, *release)

	product, ok := productForm.SubmitForm()
	if !ok {
		printFormErrors(productForm)
		os.Exit(1)
	}

	if err := f.SubmitProduct(ctx, product); err != nil {
		log.Fatalf("failed to add product: %v", err)
	}
	fmt.Println("Product added:", product.ID)
}

func runUpdate(ctx context.Context, f *facade.ProductsFacade, args []string) {
	if len(args) < 1 {
		log.Fatal("usage: catalog-admin update <id> [flags]")
	}
	id := args[0]

	fs := flag.NewFlagSet("update", flag.ExitOnError)
	name := fs.String("name", "", "product name")
	description := fs.String("description", "", "product description")
	logo := fs.String("logo", "", "logo URL")
	release := fs.String("release", "", "release date (YYYY-MM-DD)")
	fs.Parse(args[1:])

	f.LoadProducts(ctx)
	current, found := f.FindProductByID(id)
	if !found {
		log.Fatalf("product %s not found", id)
	}

	productForm := buildForm(ctx, f, true, &current)
	if *name != "" {
		productForm.UpdateField(form.FieldName, *name)
	}
	if *description != "" {
		productForm.UpdateField(form.FieldDescription, *description)
	}
	if *logo != "" {
		productForm.UpdateField(form.FieldLogo, *logo)
	}
	if *release != "" {
		productForm.UpdateField(form.FieldDateReleased, *release)
	}

	product, ok := productForm.SubmitForm()
	if !ok {
		printFormErrors(productForm)
		os.Exit(1)
	}

	f.ShowEditModal(current)
	if err := f.UpdateProductFromModal(ctx, product); err != nil {
		log.Fatalf("failed to update product: %v", err)
	}
	fmt.Println("Product updated:", id)
}

func runDelete(ctx context.Context, f *facade.ProductsFacade, id string) {
	f.LoadProducts(ctx)
	current, found := f.FindProductByID(id)
	if !found {
		log.Fatalf("product %s not found", id)
	}

	f.ShowDeleteModal(current.ID, current.Name)
	if err := f.ConfirmDeleteProduct(ctx); err != nil {
		if msg := f.DeleteModal().Error().Get(); msg != "" {
			log.Fatal(msg)
		}
		log.Fatalf("failed to delete product: %v", err)
	}
	fmt.Println("Product deleted:", id)
}

// buildForm wires the form's id check to the facade; the check runs
// synchronously since the terminal has no typing to keep responsive.
func buildForm(ctx context.Context, f *facade.ProductsFacade, edit bool, product *model.Product) *form.ProductForm {
	var productForm *form.ProductForm
	productForm = form.NewProductForm(func(id string) {
		productForm.SetIDExistsValidation(f.ValidateProductID(ctx, id))
	})
	productForm.SetEditMode(edit, product)
	return productForm
}

func printFormErrors(productForm *form.ProductForm) {
	fmt.Fprintln(os.Stderr, "invalid product:")
	for _, field := range []form.Field{
		form.FieldID,
		form.FieldName,
		form.FieldDescription,
		form.FieldLogo,
		form.FieldDateReleased,
		form.FieldDateRevision,
	} {
		if msg := productForm.FieldError(field); msg != "" {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", field, msg)
		}
	}
}

func renderTable(table model.TableData) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for i, column := range table.Columns {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, column.Label)
	}
	fmt.Fprintln(w)
	for _, row := range table.Rows {
		for i, column := range table.Columns {
			if i > 0 {
				fmt.Fprint(w, "\t")
			}
			fmt.Fprint(w, row[column.Key])
		}
		fmt.Fprintln(w)
	}
	w.Flush()
}
