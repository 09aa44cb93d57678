package estimator

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

type Handler struct{}

var validate = validator.New()

type calcResponse struct {
	Result
	SystemSizeKw   float64 `json:"system_size_kw"`
	PotentialScore float64 `json:"potential_score"`
}

// ValidateInput checks the declared range constraints. The calc core assumes
// valid input, so every entry point runs this first.
func ValidateInput(in Input) error {
	if err := validate.Struct(in); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			fe := errs[0]
			return fmt.Errorf("field %s failed constraint %s=%s", fe.Field(), fe.Tag(), fe.Param())
		}
		return err
	}
	return nil
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if err := ValidateInput(input); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	res := Calculate(input)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(calcResponse{
		Result:         res,
		SystemSizeKw:   SystemSizeKw(res.AnnualOutputKwh),
		PotentialScore: PotentialScore(res.AnnualOutputKwh, input.AreaM2),
	})
}
