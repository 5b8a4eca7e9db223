package app

import (
	"context"

	"github.com/carousell/ct-go/pkg/logger"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap/zapcore"

	"github.com/jmvillota/product-console/internal/client"
	"github.com/jmvillota/product-console/internal/config"
	"github.com/jmvillota/product-console/internal/pagination"
	"github.com/jmvillota/product-console/internal/usecase"
)

// FormFactory builds a form orchestrator for one screen. An empty
// productID opens the form in create mode; a non-empty one in edit
// mode.
type FormFactory func(productID string) *usecase.ProductForm

func Invoke(funcs ...any) *fx.App {
	log := logger.MustNamed("app")
	conf := config.MustLoad()
	log.Debugw("config loaded", log.Reflect("config", conf))
	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			l := &fxevent.ZapLogger{
				Logger: log.Unwrap().Desugar(),
			}
			l.UseLogLevel(zapcore.DebugLevel)
			return l
		}),
		fx.Provide(
			client.NewProductAPI,
			pagination.NewEngine,
			usecase.NewProductList,

			newNavigator,
			newFormFactory,
		),
		fx.Supply(conf),
		fx.Invoke(funcs...),
	)
}

func newFormFactory(gateway client.ProductAPI, nav usecase.Navigator) FormFactory {
	return func(productID string) *usecase.ProductForm {
		return usecase.NewProductForm(gateway, nav, productID)
	}
}

// logNavigator stands in for the UI shell's router. Hosts embedding the
// graph decorate usecase.Navigator with the real one.
type logNavigator struct {
	log *logger.Logger
}

func newNavigator() usecase.Navigator {
	return &logNavigator{log: logger.MustNamed("nav")}
}

func (n *logNavigator) Navigate(path string) {
	n.log.Infow("navigate", "path", path)
}

// LoadCatalog loads the product collection on startup and tears the
// list orchestrator down on shutdown, so no subscription outlives the
// app.
func LoadCatalog(lc fx.Lifecycle, list *usecase.ProductList) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// A failed load is surfaced on the orchestrator, not
			// fatal to the app.
			list.Load(ctx)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			list.Close()
			return nil
		},
	})
}
