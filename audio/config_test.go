package audio

import (
	"testing"
)

// TestDefaultAudioConfig verifies default configuration
func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	if !cfg.Enabled {
		t.Error("Expected default config to have Enabled=true")
	}
	if cfg.MasterVolume != 0.5 {
		t.Errorf("Expected default master volume 0.5, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != 48000 {
		t.Errorf("Expected default sample rate 48000, got %d", cfg.SampleRate)
	}
	for st := SoundType(0); st < soundTypeCount; st++ {
		if _, ok := cfg.EffectVolumes[st]; !ok {
			t.Errorf("Expected volume for %v to be set", st)
		}
	}
}

// TestLoadAudioConfigDefaults verifies loading with no env vars
func TestLoadAudioConfigDefaults(t *testing.T) {
	t.Setenv("CUBESNAKE_AUDIO_ENABLED", "")
	t.Setenv("CUBESNAKE_MASTER_VOLUME", "")
	t.Setenv("CUBESNAKE_SFX_VOLUMES", "")
	t.Setenv("CUBESNAKE_SAMPLE_RATE", "")

	cfg := LoadAudioConfig()
	def := DefaultAudioConfig()
	if cfg.Enabled != def.Enabled || cfg.MasterVolume != def.MasterVolume || cfg.SampleRate != def.SampleRate {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoadAudioConfigEnv(t *testing.T) {
	t.Setenv("CUBESNAKE_AUDIO_ENABLED", "false")
	t.Setenv("CUBESNAKE_MASTER_VOLUME", "80")
	t.Setenv("CUBESNAKE_SFX_VOLUMES", `{"eat":0.25,"wall":3}`)
	t.Setenv("CUBESNAKE_SAMPLE_RATE", "22050")

	cfg := LoadAudioConfig()
	if cfg.Enabled {
		t.Error("Expected Enabled=false")
	}
	if cfg.MasterVolume != 0.8 {
		t.Errorf("Expected master volume 0.8, got %f", cfg.MasterVolume)
	}
	if cfg.EffectVolumes[SoundEat] != 0.25 {
		t.Errorf("Expected eat volume 0.25, got %f", cfg.EffectVolumes[SoundEat])
	}
	if cfg.EffectVolumes[SoundWall] != 1.0 {
		t.Errorf("Expected wall volume clamped to 1.0, got %f", cfg.EffectVolumes[SoundWall])
	}
	if cfg.EffectVolumes[SoundBite] != DefaultAudioConfig().EffectVolumes[SoundBite] {
		t.Error("Expected unnamed effects to keep default volume")
	}
	if cfg.SampleRate != 22050 {
		t.Errorf("Expected sample rate 22050, got %d", cfg.SampleRate)
	}
}

func TestLoadAudioConfigClampAndInvalid(t *testing.T) {
	t.Setenv("CUBESNAKE_AUDIO_ENABLED", "maybe")
	t.Setenv("CUBESNAKE_MASTER_VOLUME", "150")
	t.Setenv("CUBESNAKE_SFX_VOLUMES", "not json")
	t.Setenv("CUBESNAKE_SAMPLE_RATE", "-5")

	cfg := LoadAudioConfig()
	if !cfg.Enabled {
		t.Error("Expected invalid bool to keep default")
	}
	if cfg.MasterVolume != 1.0 {
		t.Errorf("Expected volume clamped to 1.0, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != 48000 {
		t.Errorf("Expected invalid sample rate to keep default, got %d", cfg.SampleRate)
	}

	t.Setenv("CUBESNAKE_MASTER_VOLUME", "-20")
	if v := LoadAudioConfig().MasterVolume; v != 0 {
		t.Errorf("Expected volume clamped to 0, got %f", v)
	}
}

func TestSoundTypeString(t *testing.T) {
	if SoundEat.String() != "eat" || SoundGameOver.String() != "gameover" || soundTypeCount.String() != "unknown" {
		t.Error("Unexpected sound type names")
	}
}
