package main

// builtinSample is the demo program tokenized when no input file is given.
const builtinSample = `// this is a comment
let numx = 3;
let numy = 5;
let numz = numx + numy;
print(hey);
let message = "Hello, World!";
print(message);
`
