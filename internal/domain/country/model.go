package country

// Country is a cricket-playing nation with its flag image URL.
type Country struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	GenericFlag string `json:"genericFlag"`
}
