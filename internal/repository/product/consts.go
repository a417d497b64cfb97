package product

const (
	// collection name
	productNode string = "products"

	// Fields' name and path
	CategoryFieldPath  string = "category"
	NameFieldPath      string = "name"
	PriceFieldPath     string = "price"
	ImageFieldPath     string = "image"
	ReviewsFieldPath   string = "reviews"
	CreatedAtFieldPath string = "createdAt"
	UpdatedAtFieldPath string = "updatedAt"
)
