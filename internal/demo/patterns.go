package demo

import (
	"fmt"

	"github.com/sghaida/patterns/adapter"
	"github.com/sghaida/patterns/builder"
	"github.com/sghaida/patterns/factory"
	"github.com/sghaida/patterns/observer"
	"github.com/sghaida/patterns/proxy"
	"github.com/sghaida/patterns/strategy"
)

func init() {
	register(Scenario{Name: "abstract-factory", Summary: "one factory per furniture family", Run: runAbstractFactory})
	register(Scenario{Name: "adapter", Summary: "audio player delegates vlc/mp4 to an adapter", Run: runAdapter})
	register(Scenario{Name: "builder", Summary: "step-by-step car assembly with validated build", Run: runBuilder})
	register(Scenario{Name: "factory-method", Summary: "logistics decide which transport to create", Run: runFactoryMethod})
	register(Scenario{Name: "observer", Summary: "news fanned out to subscribers in attach order", Run: runObserver})
	register(Scenario{Name: "proxy", Summary: "image loaded from disk on first display only", Run: runProxy})
	register(Scenario{Name: "strategy", Summary: "cart pays with the selected payment method", Run: runStrategy})
}

func runAbstractFactory(env Env) error {
	for i, style := range []factory.FurnitureStyle{factory.StyleModern, factory.StyleClassic} {
		f, err := factory.FactoryFor(style)
		if err != nil {
			return err
		}
		if i > 0 {
			_, _ = fmt.Fprintln(env.Out)
		}
		switch style {
		case factory.StyleModern:
			_, _ = fmt.Fprintln(env.Out, "Modern Room:")
		case factory.StyleClassic:
			_, _ = fmt.Fprintln(env.Out, "Classic Room:")
		}
		factory.NewRoom(f).Furnish(env.Out)
	}
	return nil
}

func runAdapter(env Env) error {
	player := adapter.NewAudioPlayer(env.Out)
	player.Play("mp3", "song.mp3")
	player.Play("vlc", "movie.vlc")
	player.Play("mp4", "video.mp4")
	player.Play("avi", "clip.avi")
	return nil
}

func runBuilder(env Env) error {
	car, err := builder.NewCarBuilder().
		Brand("Toyota").
		Model("Camry").
		Year(2021).
		Color("White").
		Horsepower(200).
		Build()
	if err != nil {
		return err
	}
	car.ShowDetails(env.Out)

	defaults, err := builder.NewCarBuilder().Brand("Tesla").Model("Model 3").Build()
	if err != nil {
		return err
	}
	defaults.ShowDetails(env.Out)

	// A missing mandatory field is reported, not fatal.
	if _, err := builder.NewCarBuilder().Brand("Ford").Build(); err != nil {
		_, _ = fmt.Fprintf(env.Out, "Error: %v\n", err)
	}
	return nil
}

func runFactoryMethod(env Env) error {
	_, _ = fmt.Fprintln(env.Out, "Road Logistics:")
	factory.PlanDelivery(factory.RoadLogistics{}, env.Out)
	_, _ = fmt.Fprintln(env.Out)
	_, _ = fmt.Fprintln(env.Out, "Sea Logistics:")
	factory.PlanDelivery(factory.SeaLogistics{}, env.Out)
	return nil
}

func runObserver(env Env) error {
	news := observer.NewNewsPublisher()
	email := observer.NewEmailSubscriber("reader@example.com", env.Out)
	sms := observer.NewSMSSubscriber("+123456789", env.Out)

	news.Attach(email)
	news.Attach(sms)
	news.SetNews("Breaking News: Observer Pattern in Action!")

	news.Detach(sms)
	news.SetNews("Update: Only email subscribers receive this.")
	return nil
}

func runProxy(env Env) error {
	var image proxy.Image = proxy.NewProxyImage("example.jpg", env.Out)
	_, _ = fmt.Fprintln(env.Out, "Image created, but not loaded yet.")
	image.Display()
	image.Display()
	return nil
}

func runStrategy(env Env) error {
	cart := strategy.NewShoppingCart(env.Out)
	cart.Checkout(100)

	cart.SetStrategy(strategy.CreditCard{Number: "1234-5678-9012-3456", Holder: "Ana"})
	cart.Checkout(250)

	cart.SetStrategy(strategy.PayPal{Email: "ana@example.com"})
	cart.Checkout(150)
	return nil
}
