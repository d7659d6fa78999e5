package duetconfigs

import (
	"os"
	"time"

	"github.com/reusee/duet/cmds"
	"github.com/reusee/duet/configs"
	"github.com/reusee/duet/vars"
)

type ModelName string

func (ModelName) ConfigExpr() string {
	return "model"
}

var _ configs.Configurable = ModelName("")

var modelFlag = cmds.Var[string]("-model")

func (Module) ModelName(
	loader configs.Loader,
) ModelName {
	return ModelName(vars.FirstNonZero(
		*modelFlag,
		configs.First[string](loader, "model"),
		"gpt-4o",
	))
}

type APIKey string

func (APIKey) ConfigExpr() string {
	return "api_key"
}

var _ configs.Configurable = APIKey("")

func (Module) APIKey(
	loader configs.Loader,
) APIKey {
	return APIKey(vars.FirstNonZero(
		configs.First[string](loader, "api_key"),
		os.Getenv("DUET_API_KEY"),
		os.Getenv("OPENAI_API_KEY"),
	))
}

type BaseURL string

func (BaseURL) ConfigExpr() string {
	return "base_url"
}

var _ configs.Configurable = BaseURL("")

func (Module) BaseURL(
	loader configs.Loader,
) BaseURL {
	return BaseURL(vars.FirstNonZero(
		configs.First[string](loader, "base_url"),
		os.Getenv("DUET_BASE_URL"),
		"https://api.openai.com/v1",
	))
}

// RequestTimeout bounds one collaborator round trip. There is no retry;
// a timed-out request surfaces as a normal error.
type RequestTimeout time.Duration

func (RequestTimeout) ConfigExpr() string {
	return "request_timeout_seconds"
}

var _ configs.Configurable = RequestTimeout(0)

var timeoutFlag = cmds.Var[int]("-timeout")

func (Module) RequestTimeout(
	loader configs.Loader,
) RequestTimeout {
	seconds := vars.FirstNonZero(
		*timeoutFlag,
		configs.First[int](loader, "request_timeout_seconds"),
		120,
	)
	return RequestTimeout(time.Duration(seconds) * time.Second)
}

type MaxTokens int

func (MaxTokens) ConfigExpr() string {
	return "max_tokens"
}

var _ configs.Configurable = MaxTokens(0)

var maxTokensFlag = cmds.Var[int]("-max-tokens")

func (Module) MaxTokens(
	loader configs.Loader,
) MaxTokens {
	return MaxTokens(vars.FirstNonZero(
		*maxTokensFlag,
		configs.First[int](loader, "max_tokens"),
		4096,
	))
}
