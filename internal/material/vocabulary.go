package material

// vocabulary is the fixed set of materials menus may reference.
var vocabulary = []Material{
	Air,
	"STONE", "GRANITE", "DIORITE", "ANDESITE", "GRASS_BLOCK", "DIRT", "COBBLESTONE",
	"OAK_PLANKS", "SPRUCE_PLANKS", "BIRCH_PLANKS", "OAK_LOG", "OAK_LEAVES", "SAND", "GRAVEL",
	"GOLD_ORE", "IRON_ORE", "COAL_ORE", "DIAMOND_ORE", "EMERALD_ORE", "GLASS", "GLASS_PANE",
	"WHITE_STAINED_GLASS_PANE", "BLACK_STAINED_GLASS_PANE", "GRAY_STAINED_GLASS_PANE",
	"RED_STAINED_GLASS_PANE", "LIME_STAINED_GLASS_PANE", "BLUE_STAINED_GLASS_PANE",
	"WHITE_WOOL", "RED_WOOL", "LIME_WOOL", "BLUE_WOOL", "BLACK_WOOL",
	"GOLD_BLOCK", "IRON_BLOCK", "DIAMOND_BLOCK", "EMERALD_BLOCK", "REDSTONE_BLOCK",
	"BRICKS", "TNT", "BOOKSHELF", "OBSIDIAN", "TORCH", "CHEST", "ENDER_CHEST", "CRAFTING_TABLE",
	"FURNACE", "LADDER", "RAIL", "LEVER", "STONE_BUTTON", "OAK_BUTTON", "SNOW_BLOCK", "ICE",
	"CACTUS", "CLAY", "JUKEBOX", "OAK_FENCE", "PUMPKIN", "JACK_O_LANTERN", "NETHERRACK",
	"SOUL_SAND", "GLOWSTONE", "END_STONE", "BEACON", "ANVIL", "HOPPER", "QUARTZ_BLOCK",
	"SLIME_BLOCK", "SEA_LANTERN", "HAY_BLOCK", "BARRIER", "SPAWNER", "NOTE_BLOCK", "BEDROCK",
	"IRON_SHOVEL", "IRON_PICKAXE", "IRON_AXE", "IRON_SWORD", "IRON_HOE",
	"DIAMOND_SHOVEL", "DIAMOND_PICKAXE", "DIAMOND_AXE", "DIAMOND_SWORD", "DIAMOND_HOE",
	"GOLDEN_SWORD", "WOODEN_SWORD", "STONE_SWORD", "NETHERITE_SWORD", "BOW", "ARROW", "SHIELD",
	"FLINT_AND_STEEL", "APPLE", "GOLDEN_APPLE", "ENCHANTED_GOLDEN_APPLE", "BREAD", "COOKED_BEEF",
	"CAKE", "COOKIE", "MELON_SLICE", "CARROT", "POTATO", "COAL", "DIAMOND", "EMERALD",
	"IRON_INGOT", "GOLD_INGOT", "GOLD_NUGGET", "NETHERITE_INGOT", "STICK", "STRING", "FEATHER",
	"GUNPOWDER", "FLINT", "LEATHER", "PAPER", "BOOK", "WRITABLE_BOOK", "WRITTEN_BOOK",
	"ENCHANTED_BOOK", "MAP", "FILLED_MAP", "COMPASS", "CLOCK", "NAME_TAG", "LEAD", "SADDLE",
	"BUCKET", "WATER_BUCKET", "LAVA_BUCKET", "MILK_BUCKET", "SNOWBALL", "EGG", "SLIME_BALL",
	"ENDER_PEARL", "ENDER_EYE", "BLAZE_ROD", "GHAST_TEAR", "NETHER_STAR", "EXPERIENCE_BOTTLE",
	"FIRE_CHARGE", "FIREWORK_ROCKET", "POTION", "SPLASH_POTION", "GLASS_BOTTLE", "REDSTONE",
	"REDSTONE_TORCH", "REPEATER", "COMPARATOR", "OAK_DOOR", "IRON_DOOR", "OAK_SIGN", "PAINTING",
	"ITEM_FRAME", "FLOWER_POT", "ARMOR_STAND", "MINECART", "OAK_BOAT", "ELYTRA", "TOTEM_OF_UNDYING",
	"LEATHER_HELMET", "LEATHER_CHESTPLATE", "LEATHER_LEGGINGS", "LEATHER_BOOTS",
	"IRON_HELMET", "IRON_CHESTPLATE", "IRON_LEGGINGS", "IRON_BOOTS",
	"DIAMOND_HELMET", "DIAMOND_CHESTPLATE", "DIAMOND_LEGGINGS", "DIAMOND_BOOTS",
	"PLAYER_HEAD", "SKELETON_SKULL", "ZOMBIE_HEAD", "CREEPER_HEAD", "DRAGON_HEAD",
	"MUSIC_DISC_13", "MUSIC_DISC_CAT", "WHITE_BANNER", "RED_BANNER", "BLACK_BANNER",
	"RED_BED", "WHITE_BED", "DANDELION", "POPPY", "OAK_SAPLING", "WHEAT", "WHEAT_SEEDS", "SUGAR_CANE",
	"EXPERIENCE_ORB", "COMMAND_BLOCK", "STRUCTURE_VOID",
}
