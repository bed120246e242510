package action

import "strings"

var soundNames = []string{
	"UI_BUTTON_CLICK",
	"BLOCK_NOTE_BLOCK_PLING",
	"BLOCK_NOTE_BLOCK_BASS",
	"BLOCK_NOTE_BLOCK_HARP",
	"BLOCK_NOTE_BLOCK_BELL",
	"BLOCK_CHEST_OPEN",
	"BLOCK_CHEST_CLOSE",
	"BLOCK_ENDER_CHEST_OPEN",
	"BLOCK_ANVIL_USE",
	"BLOCK_LEVER_CLICK",
	"BLOCK_WOODEN_BUTTON_CLICK_ON",
	"ENTITY_EXPERIENCE_ORB_PICKUP",
	"ENTITY_PLAYER_LEVELUP",
	"ENTITY_ITEM_PICKUP",
	"ENTITY_VILLAGER_YES",
	"ENTITY_VILLAGER_NO",
	"ENTITY_VILLAGER_TRADE",
	"ENTITY_ENDERMAN_TELEPORT",
	"ENTITY_GENERIC_EXPLODE",
	"ENTITY_FIREWORK_ROCKET_LAUNCH",
	"ENTITY_CAT_AMBIENT",
	"ENTITY_WITHER_SPAWN",
	"ENTITY_ENDER_DRAGON_GROWL",
}

var soundsByKey = func() map[string]string {
	m := make(map[string]string, len(soundNames))
	for _, name := range soundNames {
		m[soundKey(name)] = name
	}
	return m
}()

func soundKey(name string) string {
	return strings.NewReplacer(" ", "", "_", "", "-", "", ".", "").Replace(strings.ToLower(name))
}

// matchSound resolves a sound name the same forgiving way materials are resolved.
func matchSound(name string) (string, bool) {
	sound, ok := soundsByKey[soundKey(strings.TrimSpace(name))]
	return sound, ok
}
