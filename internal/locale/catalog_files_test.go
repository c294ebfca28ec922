package locale

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Every message key the bot renders must be present in every shipped
// catalog itself, not reachable only through the default-locale
// fallback.
var shippedMessageKeys = []string{
	"no_portions_left",
	"last_portion",
	"drink_consumed",
	"pre_overdrink",
	"overdrink_kick_message",
	"overdrink_no_kick_message",
	"unknown_drink",
	"drink_added",
	"drink_removed",
	"drink_exists",
	"wrong_intoxication",
	"wrong_portion_size",
	"wrong_portions_per_day",
	"name_too_long",
	"too_many_drinks",
	"restocked",
	"drink_offer",
	"offer_declined",
	"menu_header",
	"menu_empty",
	"drink_info",
	"lang_selected",
	"lang_list",
	"incorrect_language",
	"missing_permissions",
	"missing_role",
	"on_error",
}

func TestShippedCatalogsAreComplete(t *testing.T) {
	catalogs, err := Load("../../locales", "en_US")
	require.NoError(t, err)

	for _, code := range []string{"en_US", "ru_RU"} {
		cat, ok := catalogs.catalogs[code]
		require.True(t, ok, "catalog %s is not shipped", code)

		for _, key := range shippedMessageKeys {
			_, present := cat.tree[key]
			require.True(t, present, "catalog %s is missing key %s", code, key)
		}

		require.NotEmpty(t, cat.drinks, "catalog %s has no seed menu", code)
		require.NotEmpty(t, cat.jokes, "catalog %s has no jokes", code)
	}
}
