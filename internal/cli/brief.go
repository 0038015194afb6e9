package cli

import (
	"fmt"
	"os"

	"github.com/creative-copilot/backend/internal/models"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// briefFile is the on-disk form of a brief. Enums stay strings so display
// forms like "Lead Generation" are accepted.
type briefFile struct {
	ProductName        string   `yaml:"product_name"`
	ProductDescription string   `yaml:"product_description"`
	TargetAudience     string   `yaml:"target_audience"`
	Goal               string   `yaml:"goal"`
	Tone               string   `yaml:"tone"`
	Platforms          []string `yaml:"platforms"`
}

func loadBriefFile(path string) (briefFile, error) {
	var bf briefFile
	data, err := os.ReadFile(path)
	if err != nil {
		return bf, fmt.Errorf("reading brief: %w", err)
	}
	if err := yaml.Unmarshal(data, &bf); err != nil {
		return bf, fmt.Errorf("parsing brief %s: %w", path, err)
	}
	return bf, nil
}

type briefFlags struct {
	file        string
	name        string
	description string
	audience    string
	goal        string
	tone        string
	platforms   []string
}

func (f *briefFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.file, "brief", "b", "", "YAML brief file")
	fl.StringVarP(&f.name, "name", "n", "", "product name")
	fl.StringVarP(&f.description, "description", "d", "", "product description")
	fl.StringVarP(&f.audience, "audience", "a", "", "target audience")
	fl.StringVarP(&f.goal, "goal", "g", string(models.GoalAwareness), "awareness, sales, engagement or lead_generation")
	fl.StringVarP(&f.tone, "tone", "t", string(models.ToneProfessional), "professional, playful, bold, premium, casual or inspirational")
	fl.StringSliceVarP(&f.platforms, "platform", "p", nil, "target platforms")
}

// resolve merges the brief file with flags; flags set on the command line win.
func (f *briefFlags) resolve(cmd *cobra.Command) (models.CampaignBrief, error) {
	bf := briefFile{Goal: f.goal, Tone: f.tone}
	if f.file != "" {
		loaded, err := loadBriefFile(f.file)
		if err != nil {
			return models.CampaignBrief{}, err
		}
		if loaded.Goal == "" {
			loaded.Goal = f.goal
		}
		if loaded.Tone == "" {
			loaded.Tone = f.tone
		}
		bf = loaded
	}

	changed := cmd.Flags().Changed
	if changed("name") {
		bf.ProductName = f.name
	}
	if changed("description") {
		bf.ProductDescription = f.description
	}
	if changed("audience") {
		bf.TargetAudience = f.audience
	}
	if changed("goal") {
		bf.Goal = f.goal
	}
	if changed("tone") {
		bf.Tone = f.tone
	}
	if changed("platform") {
		bf.Platforms = f.platforms
	}

	goal, ok := models.ParseGoal(bf.Goal)
	if !ok {
		return models.CampaignBrief{}, fmt.Errorf("unknown goal %q", bf.Goal)
	}
	tone, ok := models.ParseTone(bf.Tone)
	if !ok {
		return models.CampaignBrief{}, fmt.Errorf("unknown tone %q", bf.Tone)
	}

	return models.CampaignBrief{
		ProductName:        bf.ProductName,
		ProductDescription: bf.ProductDescription,
		TargetAudience:     bf.TargetAudience,
		Goal:               goal,
		Tone:               tone,
		Platforms:          bf.Platforms,
	}, nil
}
