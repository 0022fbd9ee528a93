package fabric

import (
	"strings"

	"ofi/database"

	"github.com/jmoiron/sqlx"
)

// Source は用尺がどの段階で決まったかを示すタグです。
type Source string

const (
	SourceOverride Source = "override" // 画面で入力された上書き値
	SourceStandard Source = "standard" // fabric_standards の行
	SourceBuiltin  Source = "builtin"  // 組み込みの既定値
	SourceNone     Source = "none"     // 未定義。呼び出し側は警告すること
)

// DefaultSize は size 未指定時の検索キーです。
const DefaultSize = "standard"

// 組み込みの既定用尺 (m/着)。fabric_standards に行が無いときの最終フォールバック。
var builtinStandards = map[string]float64{
	"top":     1.5,
	"trouser": 1.0,
	"suit":    2.5,
}

// 画面上の製品名から品目タイプへの対応。キーは小文字で引きます。
var productMapping = map[string]string{
	"tops":     "top",
	"trousers": "trouser",
	"suits":    "suit",
}

// ItemType は製品表示名を品目タイプに変換します。大文字小文字は区別しません。
// 未知の名前は小文字化して通します。
func ItemType(product string) string {
	normalized := strings.ToLower(product)
	if t, ok := productMapping[normalized]; ok {
		return t
	}
	return normalized
}

// Resolve は品目タイプの用尺を決定します。優先順位は
// fabric_standards → 組み込み既定値 → 0 (SourceNone) です。
func Resolve(db *sqlx.DB, productType, size string) (float64, Source, error) {
	if size == "" {
		size = DefaultSize
	}

	perUnit, found, err := database.GetFabricStandard(db, productType, size)
	if err != nil {
		return 0, SourceNone, err
	}
	if found {
		return perUnit, SourceStandard, nil
	}

	if perUnit, ok := builtinStandards[productType]; ok {
		return perUnit, SourceBuiltin, nil
	}

	return 0, SourceNone, nil
}

// Required は受注の必要用尺 (m) を決定します。overridePerUnit > 0 のとき
// 上書き値が解決結果より優先されます。
func Required(db *sqlx.DB, productType, size string, units int, overridePerUnit float64) (total, perUnit float64, source Source, err error) {
	if overridePerUnit > 0 {
		return overridePerUnit * float64(units), overridePerUnit, SourceOverride, nil
	}

	perUnit, source, err = Resolve(db, productType, size)
	if err != nil {
		return 0, 0, SourceNone, err
	}
	return perUnit * float64(units), perUnit, source, nil
}
