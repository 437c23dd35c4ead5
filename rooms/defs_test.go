package rooms

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/BadMagic100/RandoMapCore/mapscene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDefs(t *testing.T) {
	defs, err := DecodeDefs(strings.NewReader(`[
		{"sceneName": "Scene_A", "text": "Text1", "x": 1.5, "y": -2},
		{"SceneName": "Scene_B", "Text": "Text2"}
	]`), "inline")
	require.NoError(t, err)
	require.Len(t, defs, 2)

	assert.Equal(t, RoomTextDef{SceneName: "Scene_A", Text: "Text1", X: 1.5, Y: -2}, defs[0])
	assert.Equal(t, "Scene_B", defs[1].SceneName)
}

func TestDecodeDefs_Invalid(t *testing.T) {
	_, err := DecodeDefs(strings.NewReader(`{"sceneName": 1}`), "broken.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode room texts broken.json")
}

func TestLoadDefs_Missing(t *testing.T) {
	_, err := LoadDefs(fstest.MapFS{}, "data/roomTexts.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open room texts data/roomTexts.json")
}

func TestMergeDefs(t *testing.T) {
	base := []RoomTextDef{{SceneName: "Scene_A", Text: "Text1"}}
	additional := []RoomTextDef{
		{SceneName: "Scene_A", Text: "Text2"},
		{SceneName: "Scene_B", Text: "Text3"},
	}

	merged := MergeDefs(nil, base, additional)

	require.Len(t, merged, 2)
	assert.Equal(t, "Text2", merged["Scene_A"].Text)
	assert.Equal(t, "Text3", merged["Scene_B"].Text)
}

func TestMergeDefs_WithoutAdditional(t *testing.T) {
	base := []RoomTextDef{{SceneName: "Scene_A", Text: "Text1"}}

	merged := MergeDefs(nil, base, nil)

	assert.Equal(t, map[string]RoomTextDef{"Scene_A": base[0]}, merged)
}

func TestMergeDefs_DropsMappedScenes(t *testing.T) {
	registry := mapscene.NewRegistry(100, 100, []string{"Town", "Crossroads_01"}, nil)
	base := []RoomTextDef{
		{SceneName: "Town", Text: "Dirtmouth"},
		{SceneName: "Abyss_01", Text: "Abyss"},
	}
	additional := []RoomTextDef{
		{SceneName: "Crossroads_01", Text: "Crossroads"},
		{SceneName: "Abyss_01", Text: "Abyss (AM)"},
	}

	merged := MergeDefs(registry, base, additional)

	assert.Equal(t, []string{"Abyss_01"}, sortedScenes(merged))
	assert.Equal(t, "Abyss (AM)", merged["Abyss_01"].Text)
}

func TestMergeDefs_LastRecordWinsWithinSet(t *testing.T) {
	base := []RoomTextDef{
		{SceneName: "Scene_A", Text: "first"},
		{SceneName: "Scene_A", Text: "second"},
	}

	merged := MergeDefs(nil, base, nil)

	assert.Equal(t, "second", merged["Scene_A"].Text)
}
