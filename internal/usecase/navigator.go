package usecase

// ProductsRoute is where both orchestrators send the user when a flow
// ends: after a successful save, and after an unloadable edit screen.
const ProductsRoute = "/products"

// Navigator is the routing surface the orchestrators drive. The UI
// shell supplies the real implementation.
type Navigator interface {
	Navigate(path string)
}
