package blogservice

import (
	"blogdomain/internal/common"
)

func validateCategoryName(v *common.Validator, name string) {
	v.Check(name != "", "nome", "must be provided")
}

func validateCommentText(v *common.Validator, text string) {
	v.Check(text != "", "texto", "must be provided")
}
