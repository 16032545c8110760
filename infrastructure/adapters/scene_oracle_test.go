package adapters

import "testing"

func TestSceneOracleParsesOneScenePerLine(t *testing.T) {
	oracle := &sceneOracle{logger: NewZerologWrapper()}

	content := "A cat dozing on a sunlit windowsill\n\n  A dog chasing leaves in a park  \nA bird gliding over rooftops\n"
	scenes := oracle.parseScenes(content)

	if len(scenes) != 3 {
		t.Fatalf("scenes = %d, want 3", len(scenes))
	}
	want := []string{
		"A cat dozing on a sunlit windowsill",
		"A dog chasing leaves in a park",
		"A bird gliding over rooftops",
	}
	for i, scene := range scenes {
		if scene.Text != want[i] {
			t.Errorf("scene %d = %q, want %q", i, scene.Text, want[i])
		}
		if scene.Ordinal != i {
			t.Errorf("scene %d ordinal = %d", i, scene.Ordinal)
		}
	}
}

func TestSceneOracleParsesEmptyAnswerToNoScenes(t *testing.T) {
	oracle := &sceneOracle{logger: NewZerologWrapper()}

	if scenes := oracle.parseScenes("  \n \n"); len(scenes) != 0 {
		t.Fatalf("scenes = %d, want 0", len(scenes))
	}
}
