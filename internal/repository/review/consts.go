package review

const (
	// collection name
	reviewNode string = "reviews"

	// Fields' name and path
	UserNameFieldPath  string = "userName"
	TextFieldPath      string = "text"
	ProductFieldPath   string = "product"
	CreatedAtFieldPath string = "createdAt"
)
