package template

// StyleCSS styles the voice comparison page.
const StyleCSS = `
body {
  margin: 0 auto;
  max-width: 860px;
  padding: 24px;
  box-sizing: border-box;
  background-color: #fafafa;
  line-height: 1.6;
  font-family: system-ui, sans-serif;
  color: #333333;
}

h1 {
  font-size: 1.5em;
  margin: 1em 0;
  font-weight: bold;
  color: #2c3e50;
}

blockquote {
  margin: 1em 0;
  padding: 0.5em 1em;
  border-left: 4px solid #e0e0e0;
  color: #666666;
  white-space: pre-wrap;
}

.voice {
  background-color: #fff;
  border: 1px solid #e0e0e0;
  border-radius: 6px;
  padding: 12px 16px;
  margin: 12px 0;
}

.voice h2 {
  font-size: 1.1em;
  margin: 0 0 4px 0;
}

.voice p {
  margin: 0.3em 0;
  font-size: 0.9em;
}

.voice.failed {
  border-color: #e74c3c;
  color: #c0392b;
}

audio {
  width: 100%;
  margin-top: 0.5em;
}
`
