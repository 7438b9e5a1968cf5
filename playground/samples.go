package playground

const shortSample = `Hello, this is a short voice test. I'm testing different AI voices to see which one sounds the most natural and pleasant for audiobook narration.`

const mediumSample = `# Voice Test Sample

This is a medium-length text sample for voice comparison testing. It includes various sentence structures and punctuation to help evaluate voice quality.

Here are some different types of content:

**Narrative Text**: The golden sunlight filtered through the ancient oak trees, casting dancing shadows across the forest floor. A gentle breeze rustled the leaves, creating a symphony of natural sounds.

**Dialogue**: "Hello there!" she called out cheerfully. "How are you doing today?"

"I'm doing well, thank you," he replied with a warm smile. "What brings you to this part of the forest?"

**Technical Content**: The process involves three key steps: initialization, data processing, and output generation. Each step requires careful attention to detail and proper error handling.

**Numbers and Lists**: The recipe calls for 2 cups of flour, 1.5 cups of sugar, and 3 large eggs. Bake at 350 degrees Fahrenheit for approximately 25-30 minutes.

This sample should give you a good sense of how each voice handles different types of content, punctuation, and emotional tone.`

const longSample = `# Extended Voice Comparison Sample

## Introduction

This extended sample is designed to thoroughly test AI voice capabilities across various content types, sentence lengths, and emotional tones. Use this when you want to really understand how a voice performs over longer passages.

## Storytelling Test

Once upon a time, in a kingdom far beyond the misty mountains and rolling green hills, there lived a young inventor named Elena. She spent her days in a cluttered workshop filled with gears, springs, and curious contraptions that whirred and clicked with mysterious purpose.

Elena had always been fascinated by the possibility of flight. While other children played with dolls or wooden swords, she built model airplanes from scraps of wood and fabric. Her dream was to create a flying machine that could carry a person high above the clouds, where the world would look like a patchwork quilt spread across the earth.

## Technical Explanation

The principles of aerodynamics involve four fundamental forces: lift, weight, thrust, and drag. Lift is generated by the difference in air pressure above and below an aircraft's wings. Weight, of course, is the gravitational force pulling the aircraft toward the earth. Thrust propels the aircraft forward, typically provided by propellers or jet engines. Drag is the resistance that opposes the aircraft's motion through the air.

Understanding these forces is crucial for anyone designing aircraft, from simple paper airplanes to complex commercial jets. The interplay between these forces determines whether an aircraft can achieve sustained flight.

## Emotional Range Test

The news hit Elena like a thunderbolt. Her mentor, Professor Aldrich, had passed away suddenly in his sleep. For a moment, she couldn't breathe. The workshop seemed to spin around her as grief washed over her in waves.

But then she remembered his words: "Elena, my dear, invention is not just about creating new things. It's about solving problems and making the world a better place. Promise me you'll never stop dreaming, never stop building."

With tears streaming down her face, she smiled. She would honor his memory by finishing their greatest project together: the first human-carrying flying machine.

## Dialogue and Character Voices

"Are you absolutely certain this contraption will fly?" asked her assistant, Marcus, eyeing the peculiar aircraft with obvious skepticism.

Elena laughed, a sound filled with nervous excitement. "Certain? Marcus, nothing in invention is certain! But I believe in our calculations, and more importantly, I believe in the dream."

"The dream is all well and good," Marcus replied dryly, "but I'd prefer not to become a pancake in the town square."

"Then perhaps," Elena suggested with a mischievous grin, "I should be the one to take the maiden flight."

## Conclusion

This sample provides a comprehensive test of voice capabilities, including narrative description, technical content, emotional passages, and character dialogue. Use it to evaluate which voice best suits your specific needs for audiobook narration or other voice applications.

Remember: the best voice is the one that keeps listeners engaged and makes the content come alive.`

var samples = []struct {
	Name    string
	Content string
}{
	{"short_sample.txt", shortSample},
	{"medium_sample.txt", mediumSample},
	{"long_sample.txt", longSample},
}
